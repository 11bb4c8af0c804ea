package models

type SessionResponse struct {
	SessionID       string `json:"sessionId"`
	CreatedAt       string `json:"createdAt"`
	LiquidityPoints int    `json:"liquidityPoints"`
}
