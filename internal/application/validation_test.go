package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "track",
			value:     "color_R",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "track",
			value:     "",
			wantErr:   true,
			wantMsg:   "track: track name is required",
		},
		{
			name:      "whitespace only",
			fieldName: "path",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "path: file path is required",
		},
		{
			name:      "unmapped field",
			fieldName: "label",
			value:     "",
			wantErr:   true,
			wantMsg:   "label: label is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if err.Error() != tt.wantMsg {
					t.Errorf("expected %q, got %q", tt.wantMsg, err.Error())
				}
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "2", want: 2},
		{name: "rounds", input: "1.234", want: 1.23},
		{name: "padded", input: " 0.5 ", want: 0.5},
		{name: "negative", input: "-1", wantErr: true},
		{name: "not a number", input: "soon", wantErr: true},
		{name: "NaN", input: "NaN", wantErr: true},
		{name: "infinity", input: "+Inf", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime("time", tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("ParseTime(%q) error = %v, expected validation error", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTime(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	if v, err := ParseValue("-3.75"); err != nil || v != -3.75 {
		t.Errorf("ParseValue(-3.75) = %v, %v", v, err)
	}
	if _, err := ParseValue("inf"); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected validation error for inf, got %v", err)
	}
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    ExportFormat
		wantErr bool
	}{
		{input: "json", want: FormatJSON},
		{input: "XLSX", want: FormatExcel},
		{input: "excel", want: FormatExcel},
		{input: "header", want: FormatHeader},
		{input: "h", want: FormatHeader},
		{input: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseExportFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseExportFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseExportFormat(%q) = %q, expected %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidatePadCount(t *testing.T) {
	if err := ValidatePadCount(0); err != nil {
		t.Errorf("pad count 0 rejected: %v", err)
	}
	if err := ValidatePadCount(-4); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    ExportFormat
		wantErr bool
	}{
		{path: "out/anim.json", want: FormatJSON},
		{path: "anim.XLSX", want: FormatExcel},
		{path: "keys.h", want: FormatHeader},
		{path: "keys.hpp", want: FormatHeader},
		{path: "keys", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatForPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatForPath(%q) = %q, expected %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestEnsureJSONExt(t *testing.T) {
	if got := EnsureJSONExt("anim"); got != "anim.json" {
		t.Errorf("EnsureJSONExt(anim) = %s", got)
	}
	if got := EnsureJSONExt("anim.JSON"); got != "anim.JSON" {
		t.Errorf("EnsureJSONExt(anim.JSON) = %s", got)
	}
}
