package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLinkHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "empty header",
			header: "",
			want:   "",
		},
		{
			name:   "next only",
			header: `<https://shop.myshopify.com/admin/api/2023-10/products.json?page_info=abc&limit=250>; rel="next"`,
			want:   "https://shop.myshopify.com/admin/api/2023-10/products.json?page_info=abc&limit=250",
		},
		{
			name:   "previous only means last page",
			header: `<https://shop.myshopify.com/admin/api/2023-10/products.json?page_info=xyz>; rel="previous"`,
			want:   "",
		},
		{
			name: "previous and next",
			header: `<https://shop.myshopify.com/admin/api/2023-10/products.json?page_info=xyz>; rel="previous", ` +
				`<https://shop.myshopify.com/admin/api/2023-10/products.json?page_info=abc>; rel="next"`,
			want: "https://shop.myshopify.com/admin/api/2023-10/products.json?page_info=abc",
		},
		{
			name:   "unparseable header",
			header: "not a link header",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLinkHeader(tt.header))
		})
	}
}
