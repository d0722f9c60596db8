package cart

import (
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	"github.com/jarvnw/website-umkm-store/models"
)

var (
	// ErrNoActiveContact blocks checkout: the order has nowhere to go.
	ErrNoActiveContact = errors.New("no active customer-service contact")
	// ErrIncompleteInfo blocks checkout until name, address and phone are
	// all filled in. Entered data is preserved by the caller.
	ErrIncompleteInfo = errors.New("name, address and phone are required")
	// ErrEmptyCart blocks checkout on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// UserInfo is the buyer's checkout form. No format validation beyond
// non-emptiness is performed.
type UserInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (u UserInfo) Validate() error {
	if strings.TrimSpace(u.Name) == "" ||
		strings.TrimSpace(u.Address) == "" ||
		strings.TrimSpace(u.Phone) == "" {
		return ErrIncompleteInfo
	}
	return nil
}

// Order is the composed hand-off: the WhatsApp deep link IS the order
// placement, no server-side order record exists.
type Order struct {
	Contact models.CSContact `json:"contact"`
	Message string           `json:"message"`
	Link    string           `json:"link"`
	Total   float64          `json:"total"`
}

// PickRandomActiveContact selects uniformly among active contacts.
func PickRandomActiveContact(contacts []models.CSContact) (models.CSContact, error) {
	var active []models.CSContact
	for _, c := range contacts {
		if c.IsActive {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		return models.CSContact{}, ErrNoActiveContact
	}
	return active[rand.Intn(len(active))], nil
}

// Checkout validates the cart and the buyer info, routes the order to a
// random active contact and composes the WhatsApp hand-off.
func Checkout(cart models.Cart, info UserInfo, contacts []models.CSContact) (Order, error) {
	if len(cart.Items) == 0 {
		return Order{}, ErrEmptyCart
	}
	if err := info.Validate(); err != nil {
		return Order{}, err
	}
	contact, err := PickRandomActiveContact(contacts)
	if err != nil {
		return Order{}, err
	}

	total := Total(cart)
	message := ComposeOrderMessage(cart.Items, info, contact, total)
	return Order{
		Contact: contact,
		Message: message,
		Link:    WhatsAppLink(contact.PhoneNumber, message),
		Total:   total,
	}, nil
}

// ComposeOrderMessage renders the line-itemized order summary sent over
// WhatsApp: greeting, buyer details, one line per cart entry as
// "- name (variation) x qty = Rp subtotal", then the total.
func ComposeOrderMessage(items []models.CartItem, info UserInfo, contact models.CSContact, total float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Halo %s, saya ingin memesan.\n", contact.Name)
	fmt.Fprintf(&b, "Nama: %s\n", info.Name)
	fmt.Fprintf(&b, "Alamat: %s\n", info.Address)
	fmt.Fprintf(&b, "No HP: %s\n\n", info.Phone)

	b.WriteString("_Daftar Pesanan:_\n\n")
	for _, item := range items {
		variationName := ""
		if item.Variation != nil {
			variationName = " (" + item.Variation.Name + ")"
		}
		fmt.Fprintf(&b, "- %s%s x %d = Rp %s\n",
			item.Name, variationName, item.Quantity, FormatRupiah(item.Subtotal()))
	}

	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "Total Akhir: Rp %s\n\n", FormatRupiah(total))
	b.WriteString("Mohon segera diproses, terima kasih!")
	return b.String()
}

// InquiryMessage is the floating-button variant: a general question routed
// to a random active contact.
func InquiryMessage(contact models.CSContact, siteName string) string {
	return fmt.Sprintf(
		"Halo %s, saya pengunjung dari website %s. Saya ingin bertanya mengenai produk Anda.",
		contact.Name, siteName)
}

// WhatsAppLink builds the wa.me deep link with the URL-encoded message.
func WhatsAppLink(phone, message string) string {
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}

// FormatRupiah renders a whole-rupiah amount with id-ID thousand dots,
// e.g. 100000 -> "100.000".
func FormatRupiah(amount float64) string {
	n := int64(amount)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := fmt.Sprintf("%d", n)
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	return sign + strings.Join(parts, ".")
}
