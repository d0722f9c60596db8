package media

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignMatchesReferenceHMAC(t *testing.T) {
	s := NewSigner("private_key_test", time.Minute)
	got := s.Sign("abc123", 1700000000)

	mac := hmac.New(sha1.New, []byte("private_key_test"))
	mac.Write([]byte("abc123" + "1700000000"))
	want := hex.EncodeToString(mac.Sum(nil))
	assert.Equal(t, want, got)
}

func TestNewTicketRoundTrip(t *testing.T) {
	s := NewSigner("private_key_test", 30*time.Minute)
	ticket, err := s.NewTicket()
	require.NoError(t, err)

	assert.Len(t, ticket.Token, 32) // 16 random bytes, hex encoded
	assert.Greater(t, ticket.Expire, time.Now().Unix())
	assert.True(t, s.Verify(ticket))
}

func TestVerifyRejectsTampering(t *testing.T) {
	s := NewSigner("private_key_test", 30*time.Minute)
	ticket, err := s.NewTicket()
	require.NoError(t, err)

	tampered := ticket
	tampered.Token = "someone-else"
	assert.False(t, s.Verify(tampered))

	expired := ticket
	expired.Expire = time.Now().Add(-time.Minute).Unix()
	expired.Signature = s.Sign(expired.Token, expired.Expire)
	assert.False(t, s.Verify(expired))
}

func TestNewTicketRequiresPrivateKey(t *testing.T) {
	s := NewSigner("", time.Minute)
	_, err := s.NewTicket()
	assert.Error(t, err)
}

func TestUploadSendsSignedMultipart(t *testing.T) {
	var gotFields map[string]string
	var gotFile string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotFields[k] = v[0]
		}
		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		buf := make([]byte, 64)
		n, _ := f.Read(buf)
		gotFile = string(buf[:n])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url":"https://ik.example.com/x.jpg","fileId":"f1","name":"x.jpg","size":11,"filePath":"/x.jpg"}`))
	}))
	defer server.Close()

	signer := NewSigner("private_key_test", time.Minute)
	ticket, err := signer.NewTicket()
	require.NoError(t, err)

	u := NewUploader(server.URL, "public_key_test")
	result, err := u.Upload(ticket, "x.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "https://ik.example.com/x.jpg", result.URL)
	assert.Equal(t, "f1", result.FileID)
	assert.Equal(t, "image-bytes", gotFile)
	assert.Equal(t, "public_key_test", gotFields["publicKey"])
	assert.Equal(t, ticket.Token, gotFields["token"])
	assert.Equal(t, ticket.Signature, gotFields["signature"])
	assert.Equal(t, "true", gotFields["useUniqueFileName"])
}

func TestUploadSurfacesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad signature", http.StatusUnauthorized)
	}))
	defer server.Close()

	signer := NewSigner("private_key_test", time.Minute)
	ticket, _ := signer.NewTicket()

	u := NewUploader(server.URL, "public_key_test")
	_, err := u.Upload(ticket, "x.jpg", strings.NewReader("image-bytes"))
	assert.ErrorContains(t, err, "status 401")
}

func TestUploadRequiresPublicKey(t *testing.T) {
	u := NewUploader("http://unused", "")
	_, err := u.Upload(Ticket{}, "x.jpg", strings.NewReader("x"))
	assert.Error(t, err)
}
