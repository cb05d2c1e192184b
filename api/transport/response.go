package transport

// Response bodies mirror the documented endpoint contracts exactly:
// 400 responses carry an error key, 404 and success confirmations carry
// message, and 500 responses carry message plus the store diagnostic.

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StoreErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type TaskCreatedResponse struct {
	Message    string `json:"message"`
	InsertedID string `json:"insertedId"`
}

type UserCreatedResponse struct {
	InsertedID string `json:"insertedId"`
}
