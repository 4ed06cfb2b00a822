package storefront

import "net/http"

// InventoryHandler lists the catalog
type InventoryHandler struct {
	*renderer
	catalog *Catalog
}

func (h *InventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ids := cartIDs(r)
	inCart := make(map[int]bool, len(ids))
	for _, id := range ids {
		inCart[id] = true
	}

	products := make([]productView, len(h.catalog.Products))
	for i, p := range h.catalog.Products {
		products[i] = productView{Product: p, InCart: inCart[p.ID]}
	}

	h.render(w, http.StatusOK, "inventory.html", view{
		Title:       "Products",
		CartCount:   len(h.catalog.Resolve(ids)),
		Sortable:    true,
		ActiveSort:  sortOptions[0],
		SortOptions: sortOptions,
		Products:    products,
	})
}

// ProductHandler shows one product, selected by the id query parameter
type ProductHandler struct {
	*renderer
	catalog *Catalog
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	p, err := h.catalog.Lookup(r.URL.Query().Get("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ids := cartIDs(r)
	inCart := false
	for _, id := range ids {
		if id == p.ID {
			inCart = true
		}
	}

	h.render(w, http.StatusOK, "item.html", view{
		CartCount:      len(h.catalog.Resolve(ids)),
		BackToProducts: true,
		Product:        productView{Product: p, InCart: inCart},
	})
}

// CartHandler lists the cart. The hosted store routes this screen on the
// client, so a direct request answers 404 with the full page.
type CartHandler struct {
	*renderer
	catalog *Catalog
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products := h.catalog.Resolve(cartIDs(r))
	h.render(w, http.StatusNotFound, "cart.html", view{
		Title:     "Your Cart",
		CartCount: len(products),
		Items:     lines(products, true),
	})
}

func lines(products []Product, removable bool) []lineView {
	out := make([]lineView, len(products))
	for i, p := range products {
		out[i] = lineView{Product: p, Removable: removable}
	}
	return out
}
