package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/farmacia-api/internal/application/dto"
	"github.com/seu-usuario/farmacia-api/internal/application/usecase"
	"github.com/seu-usuario/farmacia-api/internal/domain"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
	"github.com/seu-usuario/farmacia-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost fator de trabalho do hash de senha (equivalente ao salt rounds 10).
const bcryptCost = 10

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticação: registro, login, perfil,
// troca e reset de senha. Token bearer stateless; nenhuma sessão é
// persistida no servidor.
type AuthUseCase struct {
	customers repository.CustomerRepository
	creds     repository.CredentialRepository
	mailer    Mailer
	jwtCfg    JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(customers repository.CustomerRepository, creds repository.CredentialRepository, mailer Mailer, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{customers: customers, creds: creds, mailer: mailer, jwtCfg: jwtCfg}
}

// Register cria um cliente com credenciais: hasheia a senha com bcrypt
// (nunca persiste texto claro) e emite o token de cara.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.customers.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}
	if in.CPF != "" {
		existing, err := uc.customers.GetByCPF(in.CPF)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrCPFTaken
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	var birthDate *time.Time
	if in.BirthDate != "" {
		t, err := time.Parse("2006-01-02", in.BirthDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		birthDate = &t
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		CPF:          in.CPF,
		Address:      in.Address,
		BirthDate:    birthDate,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.customers.Create(customer); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return uc.issueToken(customer)
}

// Login verifica email/senha e emite o token. Email desconhecido e senha
// errada devolvem o mesmo erro genérico para não vazar qual dos dois falhou.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	customer, err := uc.creds.FindActiveByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.issueToken(customer)
}

// Profile devolve o cliente da identidade embutida no token.
func (uc *AuthUseCase) Profile(customerID string) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || !customer.Active {
		return nil, domain.ErrCustomerNotFound
	}
	return usecase.ToCustomerResponse(customer), nil
}

// ChangePassword troca a senha do cliente autenticado após conferir a atual.
func (uc *AuthUseCase) ChangePassword(customerID, oldPassword, newPassword string) error {
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return err
	}
	if customer == nil || !customer.Active {
		return domain.ErrCustomerNotFound
	}
	hash, err := uc.creds.PasswordHash(customerID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(oldPassword)) != nil {
		return domain.ErrWrongPassword
	}
	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	return uc.creds.UpdatePassword(customerID, string(newHash))
}

// ResetPassword gera uma senha temporária, persiste o hash e despacha a
// senha pelo colaborador de notificação. A resposta é só a confirmação.
func (uc *AuthUseCase) ResetPassword(email string) error {
	customer, err := uc.creds.FindActiveByEmail(email)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrEmailNotFound
	}
	tempPassword, err := generateTempPassword(8)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcryptCost)
	if err != nil {
		return err
	}
	if err := uc.creds.UpdatePassword(customer.ID, string(hash)); err != nil {
		return err
	}
	return uc.mailer.SendTemporaryPassword(customer.Email, customer.Name, tempPassword)
}

// VerifyToken valida o token e devolve os claims de identidade.
func (uc *AuthUseCase) VerifyToken(token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

func (uc *AuthUseCase) issueToken(customer *entity.Customer) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, customer.ID, customer.Email, customer.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Customer:  *usecase.ToCustomerResponse(customer),
		Token:     token,
		ExpiresIn: fmt.Sprintf("%dh", uc.jwtCfg.ExpHours),
	}, nil
}

// alfabeto sem caracteres ambíguos (0/O, 1/l)
const tempPasswordAlphabet = "abcdefghijkmnpqrstuvwxyz23456789"

// generateTempPassword sorteia uma senha temporária com crypto/rand.
func generateTempPassword(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(tempPasswordAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = tempPasswordAlphabet[idx.Int64()]
	}
	return string(out), nil
}
