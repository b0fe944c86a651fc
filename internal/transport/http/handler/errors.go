package handler

const (
	errInternalServer     = "Internal server error"
	errInvalidID          = "Invalid id"
	errEmailTaken         = "Email already exists"
	errInvalidCredentials = "Invalid email or password"
	errUserNotFound       = "User not found"
	errBookNotFound       = "Book not found"
	errCategoryNotFound   = "Category not found"
	errCartItemNotFound   = "Cart item not found"
	errInsufficientStock  = "Insufficient stock"
	errInvalidQuantity    = "Quantity must be at least 1"
	errCartEmpty          = "Cart is empty"
	errInvalidPayment     = "Invalid payment method"
	errOrderNotFound      = "Order not found"
	errOrderNotCancelable = "Cannot cancel order in current status"
	errAlreadyReviewed    = "You have already reviewed this book"
	errInvalidRating      = "Rating must be between 1 and 5"
)
