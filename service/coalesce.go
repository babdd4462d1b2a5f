package service

import (
	"context"

	"github.com/companieshouse/chs.go/log"
	"github.com/demoshop/checkout.web/models"
	"golang.org/x/sync/singleflight"
)

// SingleFlightCreator shares one in-flight payment creation between
// concurrent submissions made with the same token.
type SingleFlightCreator struct {
	Creator PaymentCreator
	group   singleflight.Group
}

// CreatePayment delegates to Creator unless a creation for token is already
// in flight, in which case it waits for and returns that result. The shared
// call is not tied to any one caller's context: a caller whose context ends
// stops waiting, while the creation carries on for the others.
func (s *SingleFlightCreator) CreatePayment(ctx context.Context, token string, request *models.PaymentCreationRequest) (*models.PaymentCreation, error) {
	shared := context.WithoutCancel(ctx)
	results := s.group.DoChan(token, func() (interface{}, error) {
		return s.Creator.CreatePayment(shared, token, request)
	})

	select {
	case <-ctx.Done():
		log.Debug("stopped waiting for payment creation", log.Data{"token_preview": TokenPreview(token), "reason": ctx.Err().Error()})
		return nil, ctx.Err()
	case result := <-results:
		if result.Shared {
			log.Debug("payment creation shared with a concurrent submission", log.Data{"token_preview": TokenPreview(token)})
		}
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*models.PaymentCreation), nil
	}
}
