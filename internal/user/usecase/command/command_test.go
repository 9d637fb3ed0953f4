package command

import (
	"testing"

	"gorm.io/gorm"

	"github.com/platefork/kitchen/internal/user/domain"
	"github.com/platefork/kitchen/pkg/auth"
)

type fakeUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindAll(limit, offset int) ([]domain.User, error) { return nil, nil }
func (f *fakeUserRepo) FindByRole(role string, limit, offset int) ([]domain.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(id uint) error {
	delete(f.users, id)
	return nil
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(RegisterUserCommand{
		Username: "chef1",
		Email:    "chef1@example.com",
		Password: "secret123",
		FullName: "Head Chef",
		Role:     domain.RoleKitchen,
	})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if user.Role != domain.RoleKitchen {
		t.Errorf("role = %q, want kitchen", user.Role)
	}
	if !user.IsActive {
		t.Error("new users should be active")
	}
	if user.Password == "secret123" {
		t.Error("password must be stored hashed")
	}
	if !auth.CheckPassword("secret123", user.Password) {
		t.Error("stored hash should validate the original password")
	}
}

func TestRegisterUserDefaultsToServer(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(RegisterUserCommand{
		Username: "newhire",
		Email:    "newhire@example.com",
		Password: "secret123",
		FullName: "New Hire",
	})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if user.Role != domain.RoleServer {
		t.Errorf("role = %q, want server default", user.Role)
	}
}

func TestRegisterUserRejectsDuplicates(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	base := RegisterUserCommand{
		Username: "chef1",
		Email:    "chef1@example.com",
		Password: "secret123",
		FullName: "Head Chef",
	}
	if _, err := handler.Handle(base); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	dupUsername := base
	dupUsername.Email = "other@example.com"
	if _, err := handler.Handle(dupUsername); err == nil {
		t.Error("duplicate username should be rejected")
	}

	dupEmail := base
	dupEmail.Username = "chef2"
	if _, err := handler.Handle(dupEmail); err == nil {
		t.Error("duplicate email should be rejected")
	}
}

func TestRegisterUserValidation(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	cases := []struct {
		name string
		cmd  RegisterUserCommand
	}{
		{"missing username", RegisterUserCommand{Email: "a@b.c", Password: "secret123", FullName: "A"}},
		{"short password", RegisterUserCommand{Username: "a", Email: "a@b.c", Password: "123", FullName: "A"}},
		{"bad role", RegisterUserCommand{Username: "a", Email: "a@b.c", Password: "secret123", FullName: "A", Role: "owner"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := handler.Handle(tc.cmd); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoginUser(t *testing.T) {
	repo := newFakeUserRepo()
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	if _, err := register.Handle(RegisterUserCommand{
		Username: "chef1",
		Email:    "chef1@example.com",
		Password: "secret123",
		FullName: "Head Chef",
		Role:     domain.RoleKitchen,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := login.Handle(LoginUserCommand{Username: "chef1", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Error("login should return a token")
	}

	claims, err := auth.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("token validation: %v", err)
	}
	if claims.Role != domain.RoleKitchen {
		t.Errorf("token role = %q, want kitchen", claims.Role)
	}

	if _, err := login.Handle(LoginUserCommand{Username: "chef1", Password: "wrong"}); err == nil {
		t.Error("wrong password should be rejected")
	}
	if _, err := login.Handle(LoginUserCommand{Username: "ghost", Password: "secret123"}); err == nil {
		t.Error("unknown user should be rejected")
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	user, err := register.Handle(RegisterUserCommand{
		Username: "former",
		Email:    "former@example.com",
		Password: "secret123",
		FullName: "Former Employee",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user.IsActive = false
	if err := repo.Update(user); err != nil {
		t.Fatalf("update: %v", err)
	}

	if _, err := login.Handle(LoginUserCommand{Username: "former", Password: "secret123"}); err == nil {
		t.Error("disabled account should not log in")
	}
}
