package catalog

import (
	"bytes"
	"html/template"
	"log"
	"net/url"
	"strconv"
	"strings"

	"formulario-clientes/models"
)

// NoProductsFragment is emitted whenever there is nothing to show: empty
// catalog, everything filtered out, or an upstream fetch failure the caller
// degraded to an empty snapshot.
const NoProductsFragment = `<p>No products are available at this time.</p>`

// The table is an email fragment, so styling stays inline and minimal.
// html/template escapes names and URLs in both text and attribute context;
// catalog names are third-party data and must never reach the email body raw.
var productsTmpl = template.Must(template.New("products").Parse(`<table border="1" cellpadding="8" cellspacing="0">
  <tr><th>Image</th><th>Name</th><th>View Product</th></tr>
{{- range .}}
  <tr>
    <td>{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}" width="100">{{else}}N/A{{end}}</td>
    <td>{{.Name}}</td>
    <td><a href="{{.ProductURL}}" target="_blank">View Product</a></td>
  </tr>
{{- end}}
</table>
`))

type productRow struct {
	ImageURL   string
	Name       string
	ProductURL string
}

// Render turns an ordered catalog into the HTML table fragment embedded in
// the thank-you email. Empty input yields NoProductsFragment, not an empty
// table shell.
func Render(ordered []models.CatalogItem, baseURL string) string {
	if len(ordered) == 0 {
		return NoProductsFragment
	}

	rows := make([]productRow, 0, len(ordered))
	for _, item := range ordered {
		rows = append(rows, productRow{
			ImageURL:   item.ImageURL(),
			Name:       item.Name,
			ProductURL: ProductURL(baseURL, item),
		})
	}

	var buf bytes.Buffer
	if err := productsTmpl.Execute(&buf, rows); err != nil {
		log.Printf("❌ Render: failed to execute products template: %v", err)
		return NoProductsFragment
	}
	return buf.String()
}

// ProductURL builds the public product page URL: {base}/{slug}-p{id}
func ProductURL(baseURL string, item models.CatalogItem) string {
	base := strings.TrimRight(baseURL, "/")
	return base + "/" + url.PathEscape(item.Slug) + "-p" + strconv.FormatInt(item.ID, 10)
}

// BuildFragment runs the full pipeline over one catalog snapshot:
// normalize, order, render. Unmatched priority rules are returned for the
// caller to log; they are never fatal.
func BuildFragment(items []models.CatalogItem, rules Rules, baseURL string) (string, []PriorityRule) {
	normalized := Normalize(items, rules.Exclusions)
	ordered, unmatched := Order(normalized, rules.Priorities, rules.CategoryOrder)
	return Render(ordered, baseURL), unmatched
}
