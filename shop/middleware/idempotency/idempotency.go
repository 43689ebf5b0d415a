// Package idempotency replays the stored response of a create request that is
// retried with the same X-Idempotency-Key header.
package idempotency

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/jonboulle/clockwork"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"storefront/shop/model"
)

const HeaderName = "X-Idempotency-Key"

var clock = clockwork.NewRealClock()

var errAlreadyProcessing = &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}

//encore:middleware global target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := generateBodyHash(req)
	recordKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}

	record, getErr := records.Get(req.Context(), recordKey)
	if getErr != nil {
		if errors.Is(getErr, cache.Miss) {
			return processNew(req, next, recordKey, bodyHash)
		}

		rlog.Error("Failed to read idempotency record", "key", key, "error", getErr)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return handleExistingRecord(req, next, record, bodyHash, key)
}

func processNew(req middleware.Request, next middleware.Next, recordKey model.IdempotencyKey, bodyHash string) middleware.Response {
	if err := markAsProcessing(req.Context(), recordKey, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	response := next(req)

	if response.Err != nil {
		deleteRecord(req.Context(), recordKey)
	} else {
		markAsCompleted(req.Context(), recordKey, bodyHash, response)
	}

	return response
}

func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(HeaderName))
	}

	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: HeaderName + " header is required"}
	}

	return key, nil
}

// generateBodyHash hashes the JSON encoding of the request payload
func generateBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}

	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("Failed to marshal request body", "error", err)
		return ""
	}
	return hashing(body)
}

func handleExistingRecord(req middleware.Request, next middleware.Next, record model.IdempotencyRecord, bodyHash, key string) middleware.Response {
	if err := validateBodyHash(record, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch record.Status {
	case model.IdempotencyProcessing:
		rlog.Info("Concurrent request detected", "key", key)
		return middleware.Response{Err: errAlreadyProcessing}
	case model.IdempotencyCompleted:
		return replayCompleted(req, next, record, key)
	default:
		rlog.Warn("Unknown idempotency record status, processing as new request", "key", key, "status", record.Status)
		return next(req)
	}
}

func validateBodyHash(record model.IdempotencyRecord, bodyHash string) *errs.Error {
	if bodyHash != "" && record.RequestBodyHash != "" && bodyHash != record.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

// replayCompleted decodes the stored response into the endpoint's response
// type. A record that cannot be decoded is treated as a new request.
func replayCompleted(req middleware.Request, next middleware.Next, record model.IdempotencyRecord, key string) middleware.Response {
	if len(record.Response) > 0 {
		if api := req.Data().API; api != nil && api.ResponseType != nil {
			responseType := api.ResponseType
			if responseType.Kind() == reflect.Pointer {
				responseType = responseType.Elem()
			}
			responseValue := reflect.New(responseType).Interface()

			err := json.Unmarshal(record.Response, responseValue)
			if err == nil {
				rlog.Info("Returning stored response", "key", key)
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("Failed to decode stored response", "key", key, "error", err)
		}
	}

	return next(req)
}

// markAsProcessing claims the key. Only one of several concurrent first
// requests wins; the others are aborted.
func markAsProcessing(ctx context.Context, recordKey model.IdempotencyKey, bodyHash string) *errs.Error {
	now := clock.Now()
	if err := records.SetIfNotExists(ctx, recordKey, model.IdempotencyRecord{
		Status:          model.IdempotencyProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}); err != nil {
		if errors.Is(err, cache.KeyExists) {
			rlog.Info("Concurrent request detected", "key", recordKey.Key)
			return errAlreadyProcessing
		}
		rlog.Error("Failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

// deleteRecord lets a failed request be retried with the same key
func deleteRecord(ctx context.Context, recordKey model.IdempotencyKey) {
	if _, err := records.Delete(ctx, recordKey); err != nil {
		rlog.Error("Failed to clear failed request record", "error", err)
	}
}

func markAsCompleted(ctx context.Context, recordKey model.IdempotencyKey, bodyHash string, response middleware.Response) {
	now := clock.Now()
	record := model.IdempotencyRecord{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if response.Payload != nil {
		payload, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("Failed to marshal response payload", "error", err)
			return
		}
		record.Response = payload
	}

	if err := records.Set(ctx, recordKey, record); err != nil {
		rlog.Error("Failed to store completed response", "error", err)
		return
	}

	rlog.Debug("Request completed and response stored", "key", recordKey.Key)
}

func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	sum := md5.Sum(body)
	return hex.EncodeToString(sum[:])
}
