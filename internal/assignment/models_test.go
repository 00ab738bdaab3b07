package assignment

import (
	"encoding/base64"
	"errors"
	"testing"
)

func TestDecodeDataURL(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("hello"))
	ct, data, err := DecodeDataURL("data:text/plain;base64," + payload)
	if err != nil {
		t.Fatal(err)
	}
	if ct != "text/plain" || string(data) != "hello" {
		t.Fatalf("got (%q, %q)", ct, data)
	}
}

func TestDecodeDataURLRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"hello",
		"data:text/plain",               // no payload
		"data:text/plain,plain-text",    // not base64-encoded
		"data:text/plain;base64,@@@@@@", // bad base64
	} {
		if _, _, err := DecodeDataURL(in); !errors.Is(err, ErrBadDataURL) {
			t.Errorf("%q: got %v, want ErrBadDataURL", in, err)
		}
	}
}

func TestSetGrade(t *testing.T) {
	var a Assignment
	if err := a.SetGrade(85, "good"); err != nil {
		t.Fatal(err)
	}
	if a.Grade == nil || *a.Grade != 85 || a.Feedback != "good" {
		t.Fatalf("unexpected assignment: %+v", a)
	}
	for _, bad := range []int{-1, 101} {
		if err := a.SetGrade(bad, ""); !errors.Is(err, ErrGradeRange) {
			t.Errorf("grade %d: got %v, want ErrGradeRange", bad, err)
		}
	}
	// failed grading leaves the previous grade in place
	if a.Grade == nil || *a.Grade != 85 {
		t.Fatalf("grade lost after rejected input: %+v", a)
	}
}
