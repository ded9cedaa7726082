package constants

// Response messages
const (
	ERROR_INTERNAL_ERROR     = "Internal server error"
	MISSING_LOGIN_INPUT      = "Username and password are required"
	INVALID_USERNAME         = "Username does not exist"
	INVALID_PASSWORD         = "Password does not match"
	NOT_ADMIN                = "Admin permission required"
	DATA_INPUT_IS_NOT_NUMBER = "Path parameter must be a number"
	DATABASE_UNAVAILABLE     = "Database is temporarily unavailable"
	DUPLICATE_ORDER_ID       = "A payment with this order id already exists"
)

// Roles
const (
	ROLE_ADMIN = "ADMIN"
)

// Consultation statuses
const (
	CONSULT_PENDING   = "PENDING"
	CONSULT_CONFIRMED = "CONFIRMED"
	CONSULT_DONE      = "DONE"
	CONSULT_CANCELED  = "CANCELED"
)

// Franchise inquiry statuses
const (
	FRANCHISE_NEW        = "NEW"
	FRANCHISE_CONTACTED  = "CONTACTED"
	FRANCHISE_MEETING    = "MEETING"
	FRANCHISE_CONTRACTED = "CONTRACTED"
	FRANCHISE_DROPPED    = "DROPPED"
)

// Franchise lead grades
const (
	LEAD_HOT  = "HOT"
	LEAD_WARM = "WARM"
	LEAD_COLD = "COLD"
)

// Payment statuses
const (
	PAYMENT_PENDING  = "PENDING"
	PAYMENT_PAID     = "PAID"
	PAYMENT_CANCELED = "CANCELED"
)
