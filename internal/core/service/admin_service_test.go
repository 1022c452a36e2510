package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/maan-homes/accounts-api/internal/core/domain"
	"github.com/maan-homes/accounts-api/internal/core/ports"
)

type stubAdminRepo struct {
	admins map[string]*domain.Admin
	nextID int
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func cloneAdmin(a *domain.Admin) *domain.Admin {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == admin.Email {
			return nil, domain.ErrAccountExists
		}
	}
	r.nextID++
	created := cloneAdmin(admin)
	created.ID = "admin_" + strconv.Itoa(r.nextID)
	r.admins[created.ID] = cloneAdmin(created)
	return cloneAdmin(created), nil
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAdmin(a), nil
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return cloneAdmin(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAdminRepo) Update(_ context.Context, id string, update ports.AdminUpdate) (*domain.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if update.Name != nil {
		a.Name = *update.Name
	}
	if update.Email != nil {
		a.Email = *update.Email
	}
	if update.Number != nil {
		a.Number = *update.Number
	}
	a.UpdatedAt = time.Now().UTC()
	return cloneAdmin(a), nil
}

func (r *stubAdminRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.admins[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.admins, id)
	return nil
}

func newAdminService(repo *stubAdminRepo) *AdminService {
	sessions := NewSessionTokenIssuer("secret", time.Hour)
	return NewAdminService(repo, sessions, zerolog.Nop())
}

func TestAdminService_Register(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newAdminService(repo)

	admin, err := svc.Register(context.Background(), ports.RegisterAdminInput{
		Name:     "Root",
		Email:    "ROOT@example.com",
		Password: "secret1",
		Number:   "9876543210",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if admin.UserType != domain.RoleAdmin {
		t.Fatalf("role must start as admin, got %s", admin.UserType)
	}
	if admin.Email != "root@example.com" {
		t.Fatalf("email not normalized: %s", admin.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	if _, err := svc.Register(context.Background(), ports.RegisterAdminInput{
		Name: "root", Email: "root@example.com", Password: "secret1", Number: "9876543210",
	}); err != domain.ErrAccountExists {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAdminService_Login(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newAdminService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterAdminInput{
		Name: "root", Email: "root@example.com", Password: "secret1", Number: "9876543210",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, admin, err := svc.Login(context.Background(), "root@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || admin.Name != "root" {
		t.Fatalf("unexpected login result: %q %+v", token, admin)
	}

	_, _, missingErr := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, _, wrongErr := svc.Login(context.Background(), "root@example.com", "wrong-pass")
	if missingErr != domain.ErrInvalidCredentials || wrongErr != domain.ErrInvalidCredentials {
		t.Fatalf("expected identical ErrInvalidCredentials, got %v / %v", missingErr, wrongErr)
	}
}

func TestAdminService_UpdateDeleteProfile(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newAdminService(repo)

	admin, err := svc.Register(context.Background(), ports.RegisterAdminInput{
		Name: "root", Email: "root@example.com", Password: "secret1", Number: "9876543210",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	name := "Head Admin"
	updated, err := svc.Update(context.Background(), admin.ID, ports.AdminUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "head admin" {
		t.Fatalf("name not normalized on update: %s", updated.Name)
	}

	profile, err := svc.Profile(context.Background(), admin.ID)
	if err != nil || profile.Email != "root@example.com" {
		t.Fatalf("profile: %v %+v", err, profile)
	}

	if err := svc.Delete(context.Background(), admin.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Profile(context.Background(), admin.ID); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound after delete, got %v", err)
	}
}
