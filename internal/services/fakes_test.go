package services

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"napoli_club_backend/internal/models"
	"napoli_club_backend/internal/repositories"
)

// In-memory repository fakes. They mirror the behavior the postgres
// implementations get from constraints: unique id_number and username,
// ErrNotFound on missing rows.

type fakePlayerRepo struct {
	players map[int64]*models.Player
	nextID  int64
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: map[int64]*models.Player{}}
}

func (f *fakePlayerRepo) CreatePlayer(_ repositories.SQLExecutor, player *models.Player) (int64, error) {
	for _, existing := range f.players {
		if existing.IDNumber == player.IDNumber {
			return 0, fmt.Errorf("%w: players_id_number_key", repositories.ErrDuplicateKey)
		}
	}
	f.nextID++
	player.ID = f.nextID
	cp := *player
	f.players[player.ID] = &cp
	player.RecomputeBalance()
	return player.ID, nil
}

func (f *fakePlayerRepo) GetPlayerByID(id int64) (*models.Player, error) {
	stored, ok := f.players[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *stored
	cp.RecomputeBalance()
	return &cp, nil
}

func (f *fakePlayerRepo) GetPlayers(idNumber *string) ([]models.Player, error) {
	players := []models.Player{}
	for id := int64(1); id <= f.nextID; id++ {
		stored, ok := f.players[id]
		if !ok {
			continue
		}
		if idNumber != nil && *idNumber != "" && stored.IDNumber != *idNumber {
			continue
		}
		cp := *stored
		cp.RecomputeBalance()
		players = append(players, cp)
	}
	return players, nil
}

func (f *fakePlayerRepo) UpdatePlayer(_ repositories.SQLExecutor, player *models.Player) error {
	if _, ok := f.players[player.ID]; !ok {
		return repositories.ErrNotFound
	}
	for id, existing := range f.players {
		if id != player.ID && existing.IDNumber == player.IDNumber {
			return fmt.Errorf("%w: players_id_number_key", repositories.ErrDuplicateKey)
		}
	}
	cp := *player
	f.players[player.ID] = &cp
	player.RecomputeBalance()
	return nil
}

func (f *fakePlayerRepo) DeletePlayer(_ repositories.SQLExecutor, id int64) error {
	if _, ok := f.players[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.players, id)
	return nil
}

type fakeDocumentRepo struct {
	documents map[int64]*models.Document
	nextID    int64
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{documents: map[int64]*models.Document{}}
}

func (f *fakeDocumentRepo) CreateDocument(_ repositories.SQLExecutor, doc *models.Document) (int64, error) {
	f.nextID++
	doc.ID = f.nextID
	doc.UploadDate = time.Now().UTC()
	cp := *doc
	f.documents[doc.ID] = &cp
	return doc.ID, nil
}

func (f *fakeDocumentRepo) GetDocumentByID(id int64) (*models.Document, error) {
	stored, ok := f.documents[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *stored
	return &cp, nil
}

func (f *fakeDocumentRepo) GetDocuments(playerID *int64) ([]models.Document, error) {
	docs := []models.Document{}
	for id := int64(1); id <= f.nextID; id++ {
		stored, ok := f.documents[id]
		if !ok {
			continue
		}
		if playerID != nil && stored.PlayerID != *playerID {
			continue
		}
		docs = append(docs, *stored)
	}
	return docs, nil
}

func (f *fakeDocumentRepo) GetDocumentsByPlayerID(playerID int64) ([]models.Document, error) {
	return f.GetDocuments(&playerID)
}

func (f *fakeDocumentRepo) DeleteDocument(_ repositories.SQLExecutor, id int64) error {
	if _, ok := f.documents[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.documents, id)
	return nil
}

type fakeAuthRepo struct {
	users     map[int64]*models.User
	passwords map[int64]string
	tokens    map[int64]*models.AuthToken
	nextID    int64
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		users:     map[int64]*models.User{},
		passwords: map[int64]string{},
		tokens:    map[int64]*models.AuthToken{},
	}
}

func (f *fakeAuthRepo) CreateUser(_ repositories.SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return 0, fmt.Errorf("%w: users_username_key", repositories.ErrDuplicateKey)
		}
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	f.passwords[user.ID] = hashedPassword
	return user.ID, nil
}

func (f *fakeAuthRepo) FindUserByUsername(username string) (*models.User, string, error) {
	for id, user := range f.users {
		if user.Username == username {
			cp := *user
			return &cp, f.passwords[id], nil
		}
	}
	return nil, "", repositories.ErrNotFound
}

func (f *fakeAuthRepo) UserExistsByUsername(username string) (bool, error) {
	for _, user := range f.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAuthRepo) FindUserByToken(key string) (*models.User, error) {
	for userID, token := range f.tokens {
		if token.Key == key {
			cp := *f.users[userID]
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAuthRepo) GetTokenByUserID(userID int64) (*models.AuthToken, error) {
	token, ok := f.tokens[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *token
	return &cp, nil
}

func (f *fakeAuthRepo) CreateToken(_ repositories.SQLExecutor, userID int64, key string) (*models.AuthToken, error) {
	if _, ok := f.tokens[userID]; ok {
		return nil, fmt.Errorf("%w: auth_tokens_user_id_key", repositories.ErrDuplicateKey)
	}
	token := &models.AuthToken{Key: key, UserID: userID, CreatedAt: time.Now()}
	f.tokens[userID] = token
	cp := *token
	return &cp, nil
}

// fakeFileStore keeps payloads in memory.
type fakeFileStore struct {
	files  map[string][]byte
	nextID int
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: map[string][]byte{}}
}

func (f *fakeFileStore) Save(fileName string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", err
	}
	f.nextID++
	locator := fmt.Sprintf("documents/%d_%s", f.nextID, fileName)
	f.files[locator] = buf.Bytes()
	return locator, nil
}

func (f *fakeFileStore) Remove(locator string) error {
	delete(f.files, locator)
	return nil
}

func (f *fakeFileStore) URL(locator string) string {
	return "/media/" + locator
}
