package domain

// Reply is what the engine hands back to the rendering layer: plain text, or
// a catalog to present and collect a selection for.
type Reply struct {
	Text    string               `json:"text"`
	Catalog *CatalogPresentation `json:"catalog,omitempty"`
	Outcome Outcome              `json:"outcome"`
}

// HasCatalog reports whether the reply asks for a catalog presentation
func (r Reply) HasCatalog() bool {
	return r.Catalog != nil
}
