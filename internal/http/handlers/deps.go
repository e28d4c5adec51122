package handlers

import (
	"motoparts/internal/catalog"
	"motoparts/internal/images"
	"motoparts/internal/taxonomy"
)

type Deps struct {
	ProductHandler  *ProductHandler
	AdminHandler    *AdminHandler
	TaxonomyHandler *TaxonomyHandler
}

func NewDeps(state *catalog.State, svc *catalog.Service, tax *taxonomy.Service) *Deps {
	comp := images.JPEG{}
	return &Deps{
		ProductHandler:  &ProductHandler{State: state, Tax: tax},
		AdminHandler:    &AdminHandler{State: state, Catalog: svc, Tax: tax, Compressor: comp},
		TaxonomyHandler: &TaxonomyHandler{Catalog: svc, Tax: tax},
	}
}
