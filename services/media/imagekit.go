// Package media issues signed upload tickets for direct-to-CDN uploads and
// carries a small client for performing them. The backend signs, the browser
// uploads; file bytes never pass through this service on the storefront path.
package media

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// Ticket authorizes one direct upload to the media CDN.
type Ticket struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"` // unix seconds
	Signature string `json:"signature"`
}

// UploadResult is the CDN's response for a stored file.
type UploadResult struct {
	URL      string `json:"url"`
	FileID   string `json:"fileId"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	FilePath string `json:"filePath"`
}

// Signer mints and verifies tickets with the server-held private key.
type Signer struct {
	privateKey string
	ttl        time.Duration
}

func NewSigner(privateKey string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Signer{privateKey: privateKey, ttl: ttl}
}

// Sign computes hex(HMAC-SHA1(key, token+expire)).
func (s *Signer) Sign(token string, expire int64) string {
	mac := hmac.New(sha1.New, []byte(s.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

// NewTicket mints a fresh ticket: random token, expiry ttl from now.
func (s *Signer) NewTicket() (Ticket, error) {
	if s.privateKey == "" {
		return Ticket{}, errors.New("media: private key is not configured")
	}
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return Ticket{}, err
	}
	token := hex.EncodeToString(buf)
	expire := time.Now().Add(s.ttl).Unix()
	return Ticket{Token: token, Expire: expire, Signature: s.Sign(token, expire)}, nil
}

// Verify checks a ticket's signature and expiry.
func (s *Signer) Verify(t Ticket) bool {
	if time.Now().Unix() > t.Expire {
		return false
	}
	expected := s.Sign(t.Token, t.Expire)
	return hmac.Equal([]byte(expected), []byte(t.Signature))
}

// Uploader streams a file to the CDN using a signed ticket, the same
// multipart request the browser performs.
type Uploader struct {
	uploadURL string
	publicKey string
	client    *http.Client
}

func NewUploader(uploadURL, publicKey string) *Uploader {
	return &Uploader{
		uploadURL: uploadURL,
		publicKey: publicKey,
		client:    &http.Client{Timeout: 2 * time.Minute},
	}
}

func (u *Uploader) Upload(ticket Ticket, fileName string, file io.Reader) (*UploadResult, error) {
	if u.publicKey == "" {
		return nil, errors.New("media: public key is not configured")
	}
	if fileName == "" {
		fileName = fmt.Sprintf("media_%d", time.Now().UnixMilli())
	}

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	fields := map[string]string{
		"fileName":          fileName,
		"publicKey":         u.publicKey,
		"signature":         ticket.Signature,
		"expire":            strconv.FormatInt(ticket.Expire, 10),
		"token":             ticket.Token,
		"useUniqueFileName": "true",
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, u.uploadURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := u.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, fmt.Errorf("media: upload failed (status %d): %s", res.StatusCode, msg)
	}

	var result UploadResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, errors.New("media: invalid upload response")
	}
	return &result, nil
}
