// MovieShelf - Genre Similarity Movie Recommendations
// Copyright 2026 ThreeBlackShirts
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ThreeBlackShirts/movieshelf

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return the same non-nil instance")
	}
}

func TestValidateRecommendRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       RecommendRequest
		maxLen    int
		wantField string
		wantTag   string
	}{
		{name: "plain title", req: RecommendRequest{Target: "Alien"}, maxLen: 500},
		{name: "title with spaces and punctuation", req: RecommendRequest{Target: "Mad Max: Fury Road"}, maxLen: 500},
		{name: "unicode title", req: RecommendRequest{Target: "Amélie"}, maxLen: 6},
		{name: "explicit k", req: RecommendRequest{Target: "Up", K: 5}, maxLen: 500},
		{name: "no length limit", req: RecommendRequest{Target: strings.Repeat("a", 2000)}, maxLen: 0},
		{name: "empty title", req: RecommendRequest{Target: ""}, maxLen: 500, wantField: "target", wantTag: "required"},
		{name: "blank title", req: RecommendRequest{Target: "   "}, maxLen: 500, wantField: "target", wantTag: "movietitle"},
		{name: "control character", req: RecommendRequest{Target: "Alien\x00"}, maxLen: 500, wantField: "target", wantTag: "movietitle"},
		{name: "newline", req: RecommendRequest{Target: "Al\nien"}, maxLen: 500, wantField: "target", wantTag: "movietitle"},
		{name: "too long", req: RecommendRequest{Target: strings.Repeat("a", 11)}, maxLen: 10, wantField: "target", wantTag: "max"},
		{name: "negative k", req: RecommendRequest{Target: "Up", K: -1}, maxLen: 500, wantField: "k", wantTag: "gte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := tt.req
			verr := ValidateRecommendRequest(&req, tt.maxLen)
			if tt.wantTag == "" {
				if verr != nil {
					t.Fatalf("unexpected validation error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("expected %s error on %s", tt.wantTag, tt.wantField)
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("error = %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateVar_Messages(t *testing.T) {
	t.Parallel()

	verr := ValidateVar("target", "abcdef", "max=3")
	if verr == nil {
		t.Fatal("expected error")
	}
	if got, want := verr.Error(), "target must be at most 3 characters"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if verr.Errors()[0].Param() != "3" || verr.Errors()[0].Value() != "abcdef" {
		t.Errorf("unexpected param/value: %+v", verr.Errors()[0])
	}

	if ValidateVar("k", 5, "gte=0") != nil {
		t.Error("valid value reported as error")
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	verr := ValidateRecommendRequest(&RecommendRequest{}, 500)
	if verr == nil {
		t.Fatal("expected error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_FAILED" {
		t.Errorf("Code = %q, want VALIDATION_FAILED", apiErr.Code)
	}
	if apiErr.Message != "target is required" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "target" || apiErr.Details["tag"] != "required" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&RecommendRequest{Target: " ", K: -2})
	if verr == nil {
		t.Fatal("expected error")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("got %d errors, want 2", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	if !strings.Contains(apiErr.Message, "target:") || !strings.Contains(apiErr.Message, "k:") {
		t.Errorf("Message = %q, want both fields", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("Details[fields] = %#v", apiErr.Details["fields"])
	}
}

func TestToAPIError_Empty(t *testing.T) {
	t.Parallel()

	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != ErrorCode || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
	if (&RequestValidationError{}).Error() != "validation failed" {
		t.Error("empty error message mismatch")
	}
}
