package service

import (
	"net/http"

	"github.com/demoshop/checkout.web/models"
)

// MessageState is what a MessageRule sees: the response and the message
// resolved by the rules before it.
type MessageState struct {
	StatusCode    int
	Body          models.ResponseBody
	Message       string
	FieldResolved bool
}

// MessageRule replaces the current message with Message when Applies holds.
// A FromField rule only applies until some field rule has matched.
type MessageRule struct {
	Name      string
	FromField bool
	Applies   func(s MessageState) bool
	Message   func(s MessageState) string
}

// ErrorMessageRules resolve the message shown for a failed payment creation.
// Field rules run first, in priority order, then the status overrides.
var ErrorMessageRules = []MessageRule{
	fieldRule(models.FieldError),
	fieldRule(models.FieldMessage),
	fieldRule(models.FieldDetails),
	statusRule(http.StatusUnauthorized, UnauthorizedMessage),
	statusRule(http.StatusForbidden, ForbiddenMessage),
	{
		Name: "status-400",
		Applies: func(s MessageState) bool {
			return s.StatusCode == http.StatusBadRequest && (s.Message == "" || s.Message == DefaultErrorMessage)
		},
		Message: func(s MessageState) string {
			return BadRequestPrefix + firstText(s.Body, BadRequestFallback, models.FieldError, models.FieldDetails)
		},
	},
	statusRule(http.StatusInternalServerError, ServerErrorMessage),
}

// FollowUpMessageRules resolve the message shown when a call made after the
// buyer returns from the provider fails.
var FollowUpMessageRules = []MessageRule{
	fieldRule(models.FieldError),
	fieldRule(models.FieldMessage),
	fieldRule(models.FieldDetails),
	statusRule(http.StatusUnauthorized, UnauthorizedMessage),
	statusRule(http.StatusForbidden, ForbiddenMessage),
}

// ResolveErrorMessage applies ErrorMessageRules to a failed response.
func ResolveErrorMessage(statusCode int, body models.ResponseBody) string {
	return ResolveMessage(ErrorMessageRules, DefaultErrorMessage, statusCode, body)
}

// ResolveMessage evaluates rules top to bottom starting from fallback.
func ResolveMessage(rules []MessageRule, fallback string, statusCode int, body models.ResponseBody) string {
	state := MessageState{StatusCode: statusCode, Body: body, Message: fallback}

	for _, rule := range rules {
		if rule.FromField && state.FieldResolved {
			continue
		}
		if !rule.Applies(state) {
			continue
		}
		state.Message = rule.Message(state)
		if rule.FromField {
			state.FieldResolved = true
		}
	}

	return state.Message
}

func fieldRule(field string) MessageRule {
	return MessageRule{
		Name:      "field-" + field,
		FromField: true,
		Applies: func(s MessageState) bool {
			return s.Body.Has(field)
		},
		Message: func(s MessageState) string {
			return s.Body.Text(field)
		},
	}
}

func statusRule(statusCode int, message string) MessageRule {
	return MessageRule{
		Name: "status-" + http.StatusText(statusCode),
		Applies: func(s MessageState) bool {
			return s.StatusCode == statusCode
		},
		Message: func(MessageState) string {
			return message
		},
	}
}

func firstText(body models.ResponseBody, fallback string, fields ...string) string {
	for _, field := range fields {
		if text := body.Text(field); text != "" {
			return text
		}
	}
	return fallback
}
