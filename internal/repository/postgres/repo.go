package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/pingr-im/pingr-go/internal/config"
	"github.com/pingr-im/pingr-go/internal/model"
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

type userRow struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Email          string         `db:"email"`
	ProfilePicture sql.NullString `db:"profile_picture"`
	PasswordHash   string         `db:"password_hash"`
}

func (u userRow) toModel() model.User {
	return model.User{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture.String,
	}
}

type chatRow struct {
	ID         string         `db:"id"`
	Name       sql.NullString `db:"name"`
	IsGroup    bool           `db:"is_group"`
	GroupAdmin sql.NullString `db:"group_admin"`
	CreatedAt  time.Time      `db:"created_at"`
}

type messageRow struct {
	ID          string         `db:"id"`
	ChatID      string         `db:"chat_id"`
	Content     string         `db:"content"`
	Attachment  sql.NullString `db:"attachment"`
	CreatedAt   time.Time      `db:"created_at"`
	SenderID    string         `db:"sender_id"`
	SenderName  string         `db:"sender_name"`
	SenderEmail string         `db:"sender_email"`
	SenderPic   sql.NullString `db:"sender_picture"`
}

func (m messageRow) toModel() model.Message {
	return model.Message{
		ID:         m.ID,
		ChatID:     m.ChatID,
		Content:    m.Content,
		Attachment: m.Attachment.String,
		CreatedAt:  m.CreatedAt,
		Sender: model.User{
			ID:             m.SenderID,
			Name:           m.SenderName,
			Email:          m.SenderEmail,
			ProfilePicture: m.SenderPic.String,
		},
	}
}

func (r *Repository) CreateUser(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	query, args, err := sq.Insert("users").
		Columns("name", "email", "password_hash").
		Values(name, email, passwordHash).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var userID string
	err = r.connection.GetContext(ctx, &userID, query, args...)
	if err != nil {
		return nil, err
	}

	return &model.User{ID: userID, Name: name, Email: email}, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, string, error) {
	query, args, err := sq.Select("id", "name", "email", "profile_picture", "password_hash").
		From("users").
		Where(sq.Eq{"email": email}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var row userRow
	err = r.connection.GetContext(ctx, &row, query, args...)
	if err != nil {
		return nil, "", err
	}

	user := row.toModel()
	return &user, row.PasswordHash, nil
}

func (r *Repository) GetOrCreateDirectChat(ctx context.Context, firstUserID, secondUserID string) (*model.Chat, error) {
	query, args, err := sq.Select("c.id").
		From("chats c").
		Join("chat_members m1 ON m1.chat_id = c.id AND m1.user_id = ?", firstUserID).
		Join("chat_members m2 ON m2.chat_id = c.id AND m2.user_id = ?", secondUserID).
		Where(sq.Eq{"c.is_group": false}).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var chatID string
	err = r.connection.GetContext(ctx, &chatID, query, args...)
	if err == nil {
		return r.getChat(ctx, chatID)
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	chatID, err = r.createChat(ctx, "", false, "", []string{firstUserID, secondUserID})
	if err != nil {
		return nil, err
	}

	return r.getChat(ctx, chatID)
}

func (r *Repository) CreateGroupChat(ctx context.Context, chatName string, memberIDs []string, adminID string) (*model.Chat, error) {
	chatID, err := r.createChat(ctx, chatName, true, adminID, memberIDs)
	if err != nil {
		return nil, err
	}

	return r.getChat(ctx, chatID)
}

func (r *Repository) createChat(ctx context.Context, chatName string, isGroup bool, adminID string, memberIDs []string) (string, error) {
	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertChat := sq.Insert("chats").
		Columns("name", "is_group", "group_admin").
		Values(sq.Expr("NULLIF(?, '')", chatName), isGroup, sq.Expr("NULLIF(?, '')::uuid", adminID)).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar)

	query, args, err := insertChat.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var chatID string
	if err = tx.GetContext(ctx, &chatID, query, args...); err != nil {
		return "", err
	}

	insertMembers := sq.Insert("chat_members").
		Columns("chat_id", "user_id").
		PlaceholderFormat(sq.Dollar)
	for _, memberID := range memberIDs {
		insertMembers = insertMembers.Values(chatID, memberID)
	}

	query, args, err = insertMembers.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return "", err
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %v", err)
	}

	return chatID, nil
}

func (r *Repository) getChat(ctx context.Context, chatID string) (*model.Chat, error) {
	chats, err := r.loadChats(ctx, sq.Eq{"c.id": chatID})
	if err != nil {
		return nil, err
	}
	if len(chats) == 0 {
		return nil, sql.ErrNoRows
	}

	return &chats[0], nil
}

func (r *Repository) GetUserChats(ctx context.Context, userID string) ([]model.Chat, error) {
	memberOf := sq.Expr("c.id IN (SELECT chat_id FROM chat_members WHERE user_id = ?)", userID)
	return r.loadChats(ctx, memberOf)
}

func (r *Repository) loadChats(ctx context.Context, pred interface{}) ([]model.Chat, error) {
	query, args, err := sq.Select("c.id", "c.name", "c.is_group", "c.group_admin", "c.created_at").
		From("chats c").
		Where(pred).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []chatRow
	if err = r.connection.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []model.Chat{}, nil
	}

	chatIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		chatIDs = append(chatIDs, row.ID)
	}

	members, err := r.loadMembers(ctx, chatIDs)
	if err != nil {
		return nil, err
	}

	chats := make([]model.Chat, 0, len(rows))
	for _, row := range rows {
		chat := model.Chat{
			ID:        row.ID,
			Name:      row.Name.String,
			IsGroup:   row.IsGroup,
			Users:     members[row.ID],
			CreatedAt: row.CreatedAt,
		}
		if row.GroupAdmin.Valid {
			for i := range chat.Users {
				if chat.Users[i].ID == row.GroupAdmin.String {
					chat.GroupAdmin = &chat.Users[i]
					break
				}
			}
		}
		chats = append(chats, chat)
	}

	return chats, nil
}

func (r *Repository) loadMembers(ctx context.Context, chatIDs []string) (map[string][]model.User, error) {
	query, args, err := sq.Select("m.chat_id", "u.id", "u.name", "u.email", "u.profile_picture").
		From("chat_members m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.chat_id": chatIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []struct {
		ChatID         string         `db:"chat_id"`
		ID             string         `db:"id"`
		Name           string         `db:"name"`
		Email          string         `db:"email"`
		ProfilePicture sql.NullString `db:"profile_picture"`
	}
	if err = r.connection.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	members := make(map[string][]model.User, len(chatIDs))
	for _, row := range rows {
		members[row.ChatID] = append(members[row.ChatID], model.User{
			ID:             row.ID,
			Name:           row.Name,
			Email:          row.Email,
			ProfilePicture: row.ProfilePicture.String,
		})
	}

	return members, nil
}

func (r *Repository) IsChatMember(ctx context.Context, chatID, userID string) (bool, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("chat_members").
		Where(sq.Eq{"chat_id": chatID, "user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int
	err = r.connection.GetContext(ctx, &count, query, args...)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *Repository) CreateMessage(ctx context.Context, chatID, senderID, content, attachment string) (*model.Message, error) {
	query, args, err := sq.Insert("messages").
		Columns("chat_id", "sender_id", "content", "attachment").
		Values(chatID, senderID, content, sq.Expr("NULLIF(?, '')", attachment)).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var inserted struct {
		ID        string    `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err = r.connection.GetContext(ctx, &inserted, query, args...); err != nil {
		return nil, err
	}

	sender, err := r.getUserByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	return &model.Message{
		ID:         inserted.ID,
		ChatID:     chatID,
		Sender:     *sender,
		Content:    content,
		Attachment: attachment,
		CreatedAt:  inserted.CreatedAt,
	}, nil
}

func (r *Repository) getUserByID(ctx context.Context, userID string) (*model.User, error) {
	query, args, err := sq.Select("id", "name", "email", "profile_picture").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row struct {
		ID             string         `db:"id"`
		Name           string         `db:"name"`
		Email          string         `db:"email"`
		ProfilePicture sql.NullString `db:"profile_picture"`
	}
	if err = r.connection.GetContext(ctx, &row, query, args...); err != nil {
		return nil, err
	}

	return &model.User{
		ID:             row.ID,
		Name:           row.Name,
		Email:          row.Email,
		ProfilePicture: row.ProfilePicture.String,
	}, nil
}

// GetChatMessages returns up to limit messages for the chat, newest first.
func (r *Repository) GetChatMessages(ctx context.Context, chatID string, limit int64) (*model.MessageList, error) {
	queryBuilder := sq.Select(
		"m.id",
		"m.chat_id",
		"m.content",
		"m.attachment",
		"m.created_at",
		"u.id AS sender_id",
		"u.name AS sender_name",
		"u.email AS sender_email",
		"u.profile_picture AS sender_picture",
	).
		From("messages m").
		Join("users u ON u.id = m.sender_id").
		Where(sq.Eq{"m.chat_id": chatID}).
		OrderBy("m.created_at DESC")

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	} else {
		queryBuilder = queryBuilder.Limit(50)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []messageRow
	if err = r.connection.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	messages := make(model.MessageList, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toModel())
	}

	return &messages, nil
}
