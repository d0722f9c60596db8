package cart

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarvnw/website-umkm-store/models"
)

var validInfo = UserInfo{Name: "Budi", Address: "Jl. Mawar 1", Phone: "0812345678"}

func activeContact() models.CSContact {
	return models.CSContact{ID: "1", Name: "Admin CS", PhoneNumber: "6281234567890", IsActive: true}
}

func TestPickRandomActiveContactFiltersInactive(t *testing.T) {
	contacts := []models.CSContact{
		{ID: "1", Name: "Off", IsActive: false},
		{ID: "2", Name: "On", PhoneNumber: "628", IsActive: true},
	}
	for i := 0; i < 20; i++ {
		picked, err := PickRandomActiveContact(contacts)
		require.NoError(t, err)
		assert.Equal(t, "2", picked.ID)
	}
}

func TestPickRandomActiveContactEmpty(t *testing.T) {
	_, err := PickRandomActiveContact(nil)
	assert.ErrorIs(t, err, ErrNoActiveContact)

	_, err = PickRandomActiveContact([]models.CSContact{{ID: "1", IsActive: false}})
	assert.ErrorIs(t, err, ErrNoActiveContact)
}

func TestUserInfoValidate(t *testing.T) {
	assert.NoError(t, validInfo.Validate())

	cases := []UserInfo{
		{Address: "a", Phone: "p"},
		{Name: "n", Phone: "p"},
		{Name: "n", Address: "a"},
		{Name: "   ", Address: "a", Phone: "p"},
	}
	for _, info := range cases {
		assert.ErrorIs(t, info.Validate(), ErrIncompleteInfo)
	}
}

func TestComposeOrderMessageFormat(t *testing.T) {
	items := []models.CartItem{
		{
			ProductID: "p1",
			Name:      "Shirt",
			Price:     45000,
			Quantity:  2,
			Variation: &models.Variation{ID: "v1", Name: "L", Price: 50000},
		},
	}
	msg := ComposeOrderMessage(items, validInfo, activeContact(), 100000)

	assert.Contains(t, msg, "Shirt (L) x 2")
	assert.Contains(t, msg, "= Rp 100.000")
	assert.Contains(t, msg, "Total Akhir: Rp 100.000")
	assert.Contains(t, msg, "Nama: Budi")
	assert.Contains(t, msg, "Alamat: Jl. Mawar 1")
	assert.Contains(t, msg, "No HP: 0812345678")
	assert.Contains(t, msg, "Halo Admin CS")
}

func TestComposeOrderMessageNoVariation(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "p2", Name: "Mug", Price: 30000, Quantity: 1},
	}
	msg := ComposeOrderMessage(items, validInfo, activeContact(), 30000)
	assert.Contains(t, msg, "- Mug x 1 = Rp 30.000")
	assert.NotContains(t, msg, "()")
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("6281234567890", "Halo, saya ingin memesan.")
	require.True(t, strings.HasPrefix(link, "https://wa.me/6281234567890?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Halo, saya ingin memesan.", parsed.Query().Get("text"))
}

func TestCheckoutBlockedOnEmptyCart(t *testing.T) {
	cart := models.Cart{}
	_, err := Checkout(cart, validInfo, []models.CSContact{activeContact()})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutBlockedOnIncompleteInfo(t *testing.T) {
	cart, _ := Add(models.Cart{}, models.Product{ID: "p1", Name: "Shirt", Price: 45000}, nil)
	_, err := Checkout(cart, UserInfo{Name: "Budi"}, []models.CSContact{activeContact()})
	assert.ErrorIs(t, err, ErrIncompleteInfo)
}

func TestCheckoutBlockedWithoutActiveContact(t *testing.T) {
	cart, _ := Add(models.Cart{}, models.Product{ID: "p1", Name: "Shirt", Price: 45000}, nil)
	_, err := Checkout(cart, validInfo, nil)
	assert.ErrorIs(t, err, ErrNoActiveContact)
}

func TestCheckoutComposesOrder(t *testing.T) {
	product := models.Product{ID: "p1", Name: "Shirt", Price: 45000}
	cart, _ := Add(models.Cart{}, product, nil)
	cart, _ = Add(cart, product, nil)

	order, err := Checkout(cart, validInfo, []models.CSContact{activeContact()})
	require.NoError(t, err)
	assert.Equal(t, 90000.0, order.Total)
	assert.Contains(t, order.Message, "- Shirt x 2 = Rp 90.000")
	assert.Contains(t, order.Link, "https://wa.me/6281234567890?text=")
}

func TestFormatRupiah(t *testing.T) {
	cases := map[float64]string{
		0:        "0",
		999:      "999",
		1000:     "1.000",
		45000:    "45.000",
		100000:   "100.000",
		1500000:  "1.500.000",
		-1500000: "-1.500.000",
	}
	for amount, want := range cases {
		assert.Equal(t, want, FormatRupiah(amount))
	}
}
