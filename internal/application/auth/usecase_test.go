package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-usuario/farmacia-api/internal/application/auth"
	"github.com/seu-usuario/farmacia-api/internal/application/dto"
	"github.com/seu-usuario/farmacia-api/internal/domain"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) List(filter repository.CustomerFilter) ([]*entity.Customer, int, error) {
	args := m.Called(filter)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Customer), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	args := m.Called(email)
	if v := args.Get(0); v != nil {
		return v.(*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) GetByCPF(cpf string) (*entity.Customer, error) {
	args := m.Called(cpf)
	if v := args.Get(0); v != nil {
		return v.(*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) Create(customer *entity.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *mockCustomerRepo) Update(customer *entity.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *mockCustomerRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

type mockCredentialRepo struct{ mock.Mock }

func (m *mockCredentialRepo) FindActiveByEmail(email string) (*entity.Customer, error) {
	args := m.Called(email)
	if v := args.Get(0); v != nil {
		return v.(*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCredentialRepo) PasswordHash(id string) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}

func (m *mockCredentialRepo) UpdatePassword(id, hash string) error {
	return m.Called(id, hash).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendTemporaryPassword(to, name, tempPassword string) error {
	return m.Called(to, name, tempPassword).Error(0)
}

func newAuthUC(customers *mockCustomerRepo, creds *mockCredentialRepo, mailer *mockMailer) *auth.AuthUseCase {
	return auth.NewAuthUseCase(customers, creds, mailer, auth.JWTConfig{
		Secret:   "test-secret-key",
		ExpHours: 24,
		Issuer:   "farmacia-api-test",
	})
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Registro persiste o hash bcrypt (nunca a senha em claro) e já emite token.
func TestRegister_HasheiaSenhaEEmiteToken(t *testing.T) {
	customers := new(mockCustomerRepo)
	creds := new(mockCredentialRepo)
	mailer := new(mockMailer)
	customers.On("GetByEmail", "ana@example.com").Return(nil, nil)

	var persisted *entity.Customer
	customers.On("Create", mock.AnythingOfType("*entity.Customer")).
		Run(func(args mock.Arguments) { persisted = args.Get(0).(*entity.Customer) }).
		Return(nil)

	uc := newAuthUC(customers, creds, mailer)
	out, err := uc.Register(dto.RegisterRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "Senha123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "24h", out.ExpiresIn)
	assert.Equal(t, "ana@example.com", out.Customer.Email)

	require.NotNil(t, persisted)
	assert.NotEqual(t, "Senha123", persisted.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("Senha123")))
}

// Email já registrado bloqueia o registro.
func TestRegister_EmailEmUso(t *testing.T) {
	customers := new(mockCustomerRepo)
	creds := new(mockCredentialRepo)
	mailer := new(mockMailer)
	customers.On("GetByEmail", "ana@example.com").
		Return(&entity.Customer{ID: "u1", Email: "ana@example.com", Active: true}, nil)

	uc := newAuthUC(customers, creds, mailer)
	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "Senha123"})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	customers.AssertNotCalled(t, "Create", mock.Anything)
}

// Senha correta emite o token com a identidade do cliente.
func TestLogin_OK(t *testing.T) {
	customers := new(mockCustomerRepo)
	creds := new(mockCredentialRepo)
	mailer := new(mockMailer)
	creds.On("FindActiveByEmail", "ana@example.com").Return(&entity.Customer{
		ID:           "u1",
		Name:         "Ana Souza",
		Email:        "ana@example.com",
		PasswordHash: hashOf(t, "Senha123"),
		Active:       true,
	}, nil)

	uc := newAuthUC(customers, creds, mailer)
	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "Senha123"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	claims, err := uc.VerifyToken(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.CustomerID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

// Email desconhecido e senha errada devolvem o MESMO erro, para não vazar
// qual dos dois falhou.
func TestLogin_ErroGenericoNaoVazaCausa(t *testing.T) {
	customers := new(mockCustomerRepo)
	creds := new(mockCredentialRepo)
	mailer := new(mockMailer)
	creds.On("FindActiveByEmail", "ninguem@example.com").Return(nil, nil)
	creds.On("FindActiveByEmail", "ana@example.com").Return(&entity.Customer{
		ID:           "u1",
		Email:        "ana@example.com",
		PasswordHash: hashOf(t, "Senha123"),
		Active:       true,
	}, nil)

	uc := newAuthUC(customers, creds, mailer)

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "ninguem@example.com", Password: "Senha123"})
	_, errWrongPw := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "outra-senha"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

// Troca de senha exige a senha atual correta; errada não toca no hash.
func TestChangePassword_SenhaAtualErrada(t *testing.T) {
	customers := new(mockCustomerRepo)
	creds := new(mockCredentialRepo)
	mailer := new(mockMailer)
	customers.On("GetByID", "u1").Return(&entity.Customer{ID: "u1", Active: true}, nil)
	creds.On("PasswordHash", "u1").Return(hashOf(t, "SenhaAtual1"), nil)

	uc := newAuthUC(customers, creds, mailer)
	err := uc.ChangePassword("u1", "senha-errada", "SenhaNova1")

	assert.ErrorIs(t, err, domain.ErrWrongPassword)
	creds.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
}

// Troca bem-sucedida persiste um hash novo que casa com a senha nova.
func TestChangePassword_OK(t *testing.T) {
	customers := new(mockCustomerRepo)
	creds := new(mockCredentialRepo)
	mailer := new(mockMailer)
	customers.On("GetByID", "u1").Return(&entity.Customer{ID: "u1", Active: true}, nil)
	creds.On("PasswordHash", "u1").Return(hashOf(t, "SenhaAtual1"), nil)

	var newHash string
	creds.On("UpdatePassword", "u1", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { newHash = args.String(1) }).
		Return(nil)

	uc := newAuthUC(customers, creds, mailer)
	require.NoError(t, uc.ChangePassword("u1", "SenhaAtual1", "SenhaNova1"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("SenhaNova1")))
}

// Reset persiste o hash da senha temporária e a despacha por email; a
// senha enviada casa com o hash salvo e nunca volta na resposta.
func TestResetPassword_DespachaSenhaTemporaria(t *testing.T) {
	customers := new(mockCustomerRepo)
	creds := new(mockCredentialRepo)
	mailer := new(mockMailer)
	creds.On("FindActiveByEmail", "ana@example.com").Return(&entity.Customer{
		ID:     "u1",
		Name:   "Ana Souza",
		Email:  "ana@example.com",
		Active: true,
	}, nil)

	var savedHash, sentPassword string
	creds.On("UpdatePassword", "u1", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { savedHash = args.String(1) }).
		Return(nil)
	mailer.On("SendTemporaryPassword", "ana@example.com", "Ana Souza", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { sentPassword = args.String(2) }).
		Return(nil)

	uc := newAuthUC(customers, creds, mailer)
	require.NoError(t, uc.ResetPassword("ana@example.com"))

	assert.Len(t, sentPassword, 8)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedHash), []byte(sentPassword)))
}

// Reset para email desconhecido falha sem gerar nem enviar nada.
func TestResetPassword_EmailDesconhecido(t *testing.T) {
	customers := new(mockCustomerRepo)
	creds := new(mockCredentialRepo)
	mailer := new(mockMailer)
	creds.On("FindActiveByEmail", "ninguem@example.com").Return(nil, nil)

	uc := newAuthUC(customers, creds, mailer)
	err := uc.ResetPassword("ninguem@example.com")

	assert.ErrorIs(t, err, domain.ErrEmailNotFound)
	mailer.AssertNotCalled(t, "SendTemporaryPassword", mock.Anything, mock.Anything, mock.Anything)
}

// Token adulterado é rejeitado na verificação.
func TestVerifyToken_Invalido(t *testing.T) {
	uc := newAuthUC(new(mockCustomerRepo), new(mockCredentialRepo), new(mockMailer))
	_, err := uc.VerifyToken("nao-e-um-jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
