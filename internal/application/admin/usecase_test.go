package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/pkg/hash"
)

// fakeUserRepo usuários em memória; Create reproduz o contrato da constraint
// de unicidade de username.
type fakeUserRepo struct {
	seq   int64
	users map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrUsuarioDuplicado
		}
	}
	f.seq++
	user.ID = f.seq
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(f.users, id)
	return nil
}

func TestCriarUsuario_ArmazenaDigestNuncaASenha(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)

	err := uc.CriarUsuario(context.Background(), dto.UserCreateRequest{
		Username: "maria", Password: "segredo1", IsAdmin: false,
	})
	require.NoError(t, err)

	u, err := repo.GetByUsername(context.Background(), "maria")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEqual(t, "segredo1", u.PasswordHash, "a senha em claro nunca é persistida")
	assert.Equal(t, hash.Digest("segredo1"), u.PasswordHash,
		"o digest é determinístico: mesma senha, mesmo digest")
	assert.True(t, hash.Check(u.PasswordHash, "segredo1"))
	assert.False(t, hash.Check(u.PasswordHash, "outra"))
}

func TestCriarUsuario_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.CriarUsuario(ctx, dto.UserCreateRequest{Username: "joao", Password: "abcd"}))
	err := uc.CriarUsuario(ctx, dto.UserCreateRequest{Username: "joao", Password: "efgh"})
	assert.ErrorIs(t, err, domain.ErrUsuarioDuplicado)
	assert.Len(t, repo.users, 1)
}

func TestCriarUsuario_DadosVazios(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo())
	ctx := context.Background()

	assert.ErrorIs(t, uc.CriarUsuario(ctx, dto.UserCreateRequest{Username: "", Password: "x"}), domain.ErrDadosInvalidos)
	assert.ErrorIs(t, uc.CriarUsuario(ctx, dto.UserCreateRequest{Username: "x", Password: ""}), domain.ErrDadosInvalidos)
}

func TestListarUsuarios_NaoVazaDigest(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.CriarUsuario(ctx, dto.UserCreateRequest{Username: "admin", Password: "admin123", IsAdmin: true}))
	require.NoError(t, uc.CriarUsuario(ctx, dto.UserCreateRequest{Username: "maria", Password: "segredo1"}))

	out, err := uc.ListarUsuarios(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, u := range out {
		assert.NotEmpty(t, u.Username)
		// O DTO não tem campo de senha; o que se garante aqui é que a listagem
		// devolve id, username e flag, nada mais.
		assert.NotZero(t, u.ID)
	}
}

func TestExcluirUsuario_AutoExclusaoNegada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.CriarUsuario(ctx, dto.UserCreateRequest{Username: "admin", Password: "admin123", IsAdmin: true}))

	err := uc.ExcluirUsuario(ctx, 1, 1)
	assert.ErrorIs(t, err, domain.ErrAutoExclusao)
	assert.Len(t, repo.users, 1, "o usuário continua existindo")
}

func TestExcluirUsuario_OutroUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.CriarUsuario(ctx, dto.UserCreateRequest{Username: "admin", Password: "admin123", IsAdmin: true}))
	require.NoError(t, uc.CriarUsuario(ctx, dto.UserCreateRequest{Username: "maria", Password: "segredo1"}))

	require.NoError(t, uc.ExcluirUsuario(ctx, 1, 2))
	assert.Len(t, repo.users, 1)
	_, ok := repo.users[2]
	assert.False(t, ok)
}
