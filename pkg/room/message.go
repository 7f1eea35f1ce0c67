package room

// PayloadIn is a message received from a drill client
type PayloadIn struct {
	// Action is one of answer, next or session
	Action string `json:"action"`

	// Subject is the action being answered, e.g., RAISE
	Subject string `json:"subject"`

	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// Response is a message sent to drill clients
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
