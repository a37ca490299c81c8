package api

// Request and response shapes for the labeling service, mirroring the
// server's JSON contract.

// LoginRequest carries the credentials for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the successful POST /login response.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	AccountID   string `json:"account_id"`
}

// LabelRequest carries the text to classify for POST /label.
type LabelRequest struct {
	Text      string `json:"text"`
	ModelName string `json:"model_name"`
}

// LabelResult is the POST /label response. PredictedLabel is nil when the
// model produced no label; ErrorMessage may accompany a result.
type LabelResult struct {
	ID             int     `json:"id"`
	InputText      string  `json:"input_text"`
	ModelName      string  `json:"model_name"`
	PredictedLabel *string `json:"predicted_label"`
	ProcessingTime float64 `json:"processing_time"`
	ErrorMessage   string  `json:"error_message,omitempty"`
}

// FeedbackRequest carries a human judgment for POST /feedback. The corrected
// label is only sent when the prediction is not supported.
type FeedbackRequest struct {
	RequestID      int    `json:"request_id"`
	IsSupported    bool   `json:"is_supported"`
	CorrectedLabel string `json:"corrected_label,omitempty"`
}

// FeedbackResponse is the POST /feedback response.
type FeedbackResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SystemStatus is the GET /status response. CurrentUser is nil when the
// system is idle.
type SystemStatus struct {
	IsBusy         bool    `json:"is_busy"`
	CurrentUser    *string `json:"current_user"`
	ProcessingTime float64 `json:"processing_time"`
}

// LabelsResponse is the GET /labels response.
type LabelsResponse struct {
	Labels []string `json:"labels"`
}
