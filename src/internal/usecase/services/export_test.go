package services

import "time"

func (s *PaymentService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *PaymentService) SetIDGenerator(newID func() string) {
	s.newID = newID
}

func (s *ForecastService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *LiquidityService) SetClock(now func() time.Time) {
	s.now = now
}

var ChangeVolatility = changeVolatility
