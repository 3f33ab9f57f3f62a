// Command smoketest sends one booking through a locally running bridge.
// The bridge must run with AUTH_MODE=jwt and the same JWT_SECRET.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"time"

	"bookingbridge/config"
	"bookingbridge/services/identity"
	"bookingbridge/utils"

	"go.uber.org/zap"
)

func main() {
	uid := flag.String("uid", "smoke-client", "client uid to impersonate")
	service := flag.String("service", "massage", "booked service")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.AppConfig.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set to mint a test token")
	}
	token, err := identity.NewJWTVerifier(config.AppConfig.JWTSecret).GenerateToken(*uid, *uid+"@example.com", 10*time.Minute)
	if err != nil {
		logger.Fatal("failed to mint token", zap.Error(err))
	}

	payload, err := json.Marshal(map[string]interface{}{
		"data": map[string]interface{}{
			"service": *service,
			"time":    time.Now().Add(24 * time.Hour).Format("2006-01-02T15:04"),
		},
	})
	if err != nil {
		logger.Fatal("failed to encode booking", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	url := "http://localhost:" + config.AppConfig.AppPort + "/forwardBookingToTherapist"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logger.Fatal("failed to build request", zap.Error(err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Fatal("request failed", zap.Error(err))
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	logger.Info("bridge responded",
		zap.Int("status", resp.StatusCode),
		zap.ByteString("body", body),
	)
}
