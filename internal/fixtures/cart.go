package fixtures

const (
	CartTitle = "Your Cart"
	CartPath  = "/cart.html"

	CartQuantityLabel    = "QTY"
	CartDescriptionLabel = "Description"

	ContinueShoppingText = "Continue Shopping"
	CheckoutText         = "Checkout"
)
