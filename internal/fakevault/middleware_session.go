// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakevault

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/patient-vault-example/internal/app"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// session rejects requests without a valid "Authorization: Session <token>"
// header with 401 and stores the verified claims under
// [utils.SessionCtxKey].
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Msg(app.MsgNoSessionProvided)
			utils.WriteError(w, app.MsgNoSessionProvided, http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseSessionAuthorization(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, app.MsgSessionInvalid, http.StatusUnauthorized)
			return
		}

		claims, err := utils.ValidateSessionToken(token, h.signKey, TokenIssuer)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Msg("session expired")
				utils.WriteError(w, app.MsgSessionExpired, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing session token")
				utils.WriteError(w, app.MsgSessionInvalid, http.StatusUnauthorized)
			}
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
