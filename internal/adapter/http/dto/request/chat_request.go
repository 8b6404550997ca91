package request

import "strings"

type ChatSendRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

func (r ChatSendRequest) ResolveServiceID() string {
	return strings.TrimSpace(r.ServiceID)
}

func (r ChatSendRequest) ResolveContent() string {
	return strings.TrimSpace(r.Content)
}
