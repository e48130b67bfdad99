// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/stateless-settings/internal/config"
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/internal/utils"
)

const (
	// NonceLifetime is how long an issued nonce verifies at most.
	NonceLifetime = 24 * time.Hour

	nonceLength = 10
)

// nonceService issues tokens that change every half lifetime. A token is
// accepted during its own tick and the one after it.
type nonceService struct {
	key    string
	now    func() time.Time
	logger *logger.Logger
}

func NewNonceService(cfg config.App, logger *logger.Logger) (NonceService, error) {
	if cfg.NonceKey == "" {
		return nil, ErrNonceKeyIsNotSpecified
	}
	return &nonceService{key: cfg.NonceKey, now: time.Now, logger: logger}, nil
}

// Create returns the nonce of action for the user in ctx. Anonymous
// requests get a nonce bound to user id 0.
func (n *nonceService) Create(ctx context.Context, action string) string {
	userID, _ := utils.GetUserIDFromContext(ctx)
	return n.token(n.tick(), action, userID)
}

func (n *nonceService) Verify(ctx context.Context, nonce, action string) bool {
	if nonce == "" {
		return false
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	tick := n.tick()
	for _, t := range []int64{tick, tick - 1} {
		expected := n.token(t, action, userID)
		if subtle.ConstantTimeCompare([]byte(expected), []byte(nonce)) == 1 {
			return true
		}
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*nonceService.Verify").
		Str("action", action).
		Int64("user_id", userID).
		Msg("nonce did not verify")
	return false
}

func (n *nonceService) tick() int64 {
	half := int64(NonceLifetime/time.Second) / 2
	unix := n.now().Unix()
	return (unix + half - 1) / half
}

func (n *nonceService) token(tick int64, action string, userID int64) string {
	return utils.HashString(fmt.Sprintf("%d|%s|%d", tick, action, userID), n.key)[:nonceLength]
}
