package dto

// PushKeys are the subscription's encryption keys.
type PushKeys struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}

// SubscribeRequest is a browser PushSubscription serialized with toJSON().
type SubscribeRequest struct {
	Endpoint string   `json:"endpoint" validate:"required,url"`
	Keys     PushKeys `json:"keys" validate:"required"`
}

// UnsubscribeRequest removes a subscription by endpoint.
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
}

// BroadcastRequest is a notification sent to every subscriber.
type BroadcastRequest struct {
	Title string `json:"title" validate:"required,max=120"`
	Body  string `json:"body" validate:"required,max=500"`
	URL   string `json:"url" validate:"omitempty,url"`
}

// BroadcastResponse summarizes a broadcast.
type BroadcastResponse struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Removed int `json:"removed"`
}
