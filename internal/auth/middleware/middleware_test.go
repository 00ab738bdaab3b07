package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/digital-aware/portal/internal/rbac"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	a := NewAuthService("test-secret")
	tok, err := a.IssueJWT("s-1", "Sam", "student")
	if err != nil {
		t.Fatal(err)
	}
	c, err := a.Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if c.Sub != "s-1" || c.Name != "Sam" || c.Role != "student" {
		t.Fatalf("unexpected claims: %+v", c)
	}
}

func TestParseRejectsForeignToken(t *testing.T) {
	tok, err := NewAuthService("secret-one").IssueJWT("s-1", "Sam", "student")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewAuthService("secret-two").Parse(tok); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}

func TestStudentLogin(t *testing.T) {
	a := NewAuthService("test-secret")
	h := StudentLoginHandler(a)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/auth/student", strings.NewReader(`{"name":"Sam","student_id":"s-1"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "access_token") {
		t.Fatalf("no token in response: %s", rec.Body)
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/auth/student", strings.NewReader(`{"name":"  ","student_id":""}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank identity accepted: %d", rec.Code)
	}
}

func TestTeacherLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	a := NewAuthService("test-secret")
	h := TeacherLoginHandler(a, string(hash))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/auth/teacher", strings.NewReader(`{"password":"admin123"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/auth/teacher", strings.NewReader(`{"password":"wrong"}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password accepted: %d", rec.Code)
	}
}

func TestJWTMiddlewarePopulatesContext(t *testing.T) {
	a := NewAuthService("test-secret")
	tok, _ := a.IssueJWT("s-1", "Sam", "student")

	var gotRole, gotSub, gotName string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole = rbac.RoleFromContext(r.Context())
		gotSub = rbac.SubjectFromContext(r.Context())
		gotName = rbac.NameFromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/modules", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	JWTMiddleware(a)(next).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if gotRole != "student" || gotSub != "s-1" || gotName != "Sam" {
		t.Fatalf("context not populated: role=%q sub=%q name=%q", gotRole, gotSub, gotName)
	}

	rec = httptest.NewRecorder()
	JWTMiddleware(a)(next).ServeHTTP(rec, httptest.NewRequest("GET", "/modules", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing bearer accepted: %d", rec.Code)
	}
}
