package client

import "strings"

// Resource names as they appear in URLs.
const (
	ResourceAboutUs     = "aboutus"
	ResourceImageSlider = "imageslider"
	ResourceProgram     = "program"
	ResourcePartner     = "ourpartner"
	ResourceTransaction = "transaction"
)

// ResourceSet holds the descriptor of every managed collection.
type ResourceSet struct {
	AboutUs     Resource
	ImageSlider Resource
	Programs    Resource
	Partners    Resource
	Transaction Resource
}

// Resources builds the default contracts: image collections live under
// {contentOrigin}/v1/content and transactions under
// {txOrigin}/api/v1/content. An empty txOrigin falls back to contentOrigin.
func Resources(contentOrigin, txOrigin string) ResourceSet {
	contentOrigin = strings.TrimRight(contentOrigin, "/")
	txOrigin = strings.TrimRight(txOrigin, "/")
	if txOrigin == "" {
		txOrigin = contentOrigin
	}

	form := func(name string) Resource {
		return Resource{Name: name, BaseURL: contentOrigin + "/v1/content/" + name, Encoding: EncodingMultipart}
	}

	return ResourceSet{
		AboutUs:     form(ResourceAboutUs),
		ImageSlider: form(ResourceImageSlider),
		Programs:    form(ResourceProgram),
		Partners:    form(ResourcePartner),
		Transaction: Resource{
			Name:     ResourceTransaction,
			BaseURL:  txOrigin + "/api/v1/content/" + ResourceTransaction,
			Encoding: EncodingJSON,
		},
	}
}
