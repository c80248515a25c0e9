package catalog

type CatalogContainer struct {
	Catalog *Catalog
	Handler *Handler
}

func NewCatalogContainer(c *Catalog) *CatalogContainer {
	return &CatalogContainer{
		Catalog: c,
		Handler: NewHandler(c),
	}
}
