package storefront

import (
	"errors"
	"net/http"

	"github.com/themizzi/swagtest/internal/models"
	"github.com/themizzi/swagtest/internal/services"
	"go.uber.org/zap"
)

const (
	stepOneTitle  = "Checkout: Your Information"
	stepTwoTitle  = "Checkout: Overview"
	completeTitle = "Checkout: Complete!"
)

// StepOneHandler collects the customer information and opens a pending order
type StepOneHandler struct {
	*renderer
	catalog *Catalog
	orders  services.OrderService
}

func (h *StepOneHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, http.StatusNotFound, "checkout_step_one.html", view{
			Title:     stepOneTitle,
			CartCount: len(h.catalog.Resolve(cartIDs(r))),
		})
	case http.MethodPost:
		h.submit(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *StepOneHandler) submit(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Resolve(cartIDs(r))
	form := parseCheckoutForm(r)

	if err := form.Validate(); err != nil {
		h.render(w, http.StatusOK, "checkout_step_one.html", view{
			Title:     stepOneTitle,
			CartCount: len(products),
			Form:      form,
			Error:     err.Error(),
		})
		return
	}

	// An empty cart may still be reviewed, but there is nothing to order
	if len(products) > 0 {
		items := make([]models.LineItem, len(products))
		for i, p := range products {
			items[i] = p.LineItem()
		}
		order, err := h.orders.OpenOrder(form.Customer(), items)
		if err != nil {
			h.logger.Error("failed to create order", zap.Error(err))
			http.Error(w, "Failed to create order", http.StatusInternalServerError)
			return
		}
		h.logger.Info("order created",
			zap.String("reference", order.Reference),
			zap.Int("items", len(order.Items)),
			zap.String("total", order.GetFormattedTotal()),
		)
		setCookie(w, OrderCookie, order.Reference)
	}

	http.Redirect(w, r, "/checkout-step-two.html", http.StatusSeeOther)
}

// StepTwoHandler shows the order overview and finishes or cancels the order
type StepTwoHandler struct {
	*renderer
	catalog *Catalog
	orders  services.OrderService
}

func (h *StepTwoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.overview(w, r)
	case http.MethodPost:
		switch r.PostFormValue("action") {
		case "finish":
			h.finish(w, r)
		case "cancel":
			h.cancel(w, r)
		default:
			http.Error(w, "Unknown action", http.StatusBadRequest)
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *StepTwoHandler) overview(w http.ResponseWriter, r *http.Request) {
	cart := h.catalog.Resolve(cartIDs(r))
	products := cart
	if order := h.pendingOrder(r); order != nil {
		products = nil
		for _, item := range order.Items {
			if p, err := h.catalog.Product(item.ProductID); err == nil {
				products = append(products, p)
			}
		}
	}

	var subtotal int64
	for _, p := range products {
		subtotal += p.PriceCents
	}
	tax := models.TaxOn(subtotal)

	h.render(w, http.StatusNotFound, "checkout_step_two.html", view{
		Title:     stepTwoTitle,
		CartCount: len(cart),
		Items:     lines(products, false),
		Subtotal:  models.FormatCents(subtotal),
		Tax:       models.FormatCents(tax),
		Total:     models.FormatCents(subtotal + tax),
	})
}

func (h *StepTwoHandler) finish(w http.ResponseWriter, r *http.Request) {
	if ref := readCookie(r, OrderCookie); ref != "" {
		if order, err := h.orders.PlaceOrder(ref); err != nil {
			h.logger.Warn("failed to place order", zap.String("reference", ref), zap.Error(err))
		} else {
			h.logger.Info("order placed", zap.String("reference", ref), zap.String("total", order.GetFormattedTotal()))
		}
	}
	clearCookie(w, CartCookie)
	http.Redirect(w, r, "/checkout-complete.html", http.StatusSeeOther)
}

// cancel abandons the pending order; the cart is kept
func (h *StepTwoHandler) cancel(w http.ResponseWriter, r *http.Request) {
	if ref := readCookie(r, OrderCookie); ref != "" {
		err := h.orders.CancelOrder(ref)
		if err != nil && !errors.Is(err, models.ErrInvalidStatusTransition) {
			h.logger.Warn("failed to cancel order", zap.String("reference", ref), zap.Error(err))
		}
		clearCookie(w, OrderCookie)
	}
	http.Redirect(w, r, "/inventory.html", http.StatusSeeOther)
}

func (h *StepTwoHandler) pendingOrder(r *http.Request) *models.Order {
	ref := readCookie(r, OrderCookie)
	if ref == "" {
		return nil
	}
	order, err := h.orders.FindOrder(ref)
	if err != nil || !order.IsPending() {
		return nil
	}
	return order
}

// CompleteHandler confirms the placed order
type CompleteHandler struct {
	*renderer
	catalog *Catalog
	orders  services.OrderService
}

func (h *CompleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	v := view{
		Title:     completeTitle,
		CartCount: len(h.catalog.Resolve(cartIDs(r))),
	}
	if ref := readCookie(r, OrderCookie); ref != "" {
		if order, err := h.orders.FindOrder(ref); err == nil && order.IsPlaced() {
			v.OrderReference = order.Reference
		}
		clearCookie(w, OrderCookie)
	}
	h.render(w, http.StatusNotFound, "checkout_complete.html", v)
}
