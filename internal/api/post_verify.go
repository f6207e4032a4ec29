package api

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"reqsign/internal/crypto"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/services/signing"
)

// PostVerifyPayload is the body of POST /v1/verify. All fields are standard base64.
type PostVerifyPayload struct {
	Message   *string `json:"message"`
	Signature *string `json:"signature"`
	PublicKey *string `json:"public_key"`
}

// PostVerifyResponse answers POST /v1/verify.
type PostVerifyResponse struct {
	Valid bool `json:"valid"`
}

// PostVerifyRoute registers POST /v1/verify.
func PostVerifyRoute(s *Server) *echo.Route {
	return s.Echo.POST("/v1/verify", postVerifyHandler(s))
}

func postVerifyHandler(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := zerolog.Ctx(c.Request().Context())

		var body PostVerifyPayload
		if err := c.Bind(&body); err != nil {
			var maxErr *http.MaxBytesError
			if stderrors.As(err, &maxErr) {
				return NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large")
			}
			s.Metrics.ObserveVerification("rejected")
			return NewValidationError("body", errors.Wrap(err, "decode verify payload").Error())
		}

		switch {
		case body.Message == nil:
			s.Metrics.ObserveVerification("rejected")
			return NewValidationError("message", "message is required")
		case body.Signature == nil:
			s.Metrics.ObserveVerification("rejected")
			return NewValidationError("signature", "signature is required")
		case body.PublicKey == nil:
			s.Metrics.ObserveVerification("rejected")
			return NewValidationError("public_key", "public_key is required")
		}

		message, err := crypto.DecodeB64(*body.Message)
		if err != nil {
			s.Metrics.ObserveVerification("rejected")
			return NewValidationError("message", "must be base64 encoded")
		}

		if _, err := crypto.DecodeB64(*body.Signature); err != nil {
			s.Metrics.ObserveVerification("rejected")
			return NewValidationError("signature", "must be base64 encoded")
		}

		valid, err := signing.Verify(message, *body.Signature, *body.PublicKey)
		if err != nil {
			s.Metrics.ObserveVerification("rejected")
			if errors.Is(err, rserrors.ErrInvalidEncoding) {
				return NewValidationError("public_key", "must be a base64 Ed25519 public key")
			}
			return errors.Wrap(err, "verify signature")
		}

		outcome := "invalid"
		if valid {
			outcome = "valid"
		}
		s.Metrics.ObserveVerification(outcome)
		log.Debug().Bool("valid", valid).Int("message_len", len(message)).Msg("signature verified")

		return c.JSON(http.StatusOK, &PostVerifyResponse{Valid: valid})
	}
}
