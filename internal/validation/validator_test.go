// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package validation

import (
	"strings"
	"testing"
)

type signupFixture struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Age      int    `validate:"omitempty,gte=13,lte=120"`
}

func TestValidateStructPasses(t *testing.T) {
	req := signupFixture{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "correct-horse",
		Age:      30,
	}
	if err := ValidateStruct(&req); err != nil {
		t.Fatalf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStructSingleFailure(t *testing.T) {
	req := signupFixture{
		Username: "ada",
		Email:    "not-an-email",
		Password: "correct-horse",
	}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if len(err.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "valid email") {
		t.Errorf("Message = %q, want email wording", apiErr.Message)
	}
	if apiErr.Details["field"] != "Email" {
		t.Errorf("Details.field = %v, want Email", apiErr.Details["field"])
	}
}

func TestValidateStructMultipleFailures(t *testing.T) {
	req := signupFixture{
		Username: "ab",
		Email:    "",
		Password: "short",
	}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if len(err.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(err.Errors()), err)
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details.fields has unexpected type %T", apiErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("expected 3 field entries, got %d", len(fields))
	}
}

func TestTranslateMinMaxWording(t *testing.T) {
	tests := []struct {
		name string
		req  signupFixture
		want string
	}{
		{
			name: "string min is characters",
			req:  signupFixture{Username: "ab", Email: "a@b.co", Password: "correct-horse"},
			want: "at least 3 characters",
		},
		{
			name: "numeric gte is value",
			req:  signupFixture{Username: "ada", Email: "a@b.co", Password: "correct-horse", Age: 5},
			want: "greater than or equal to 13",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if err == nil {
				t.Fatal("expected validation failure")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error() = %q, want substring %q", err.Error(), tt.want)
			}
		})
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() returned different instances")
	}
}
