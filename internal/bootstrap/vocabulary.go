package bootstrap

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/job-normalizer/internal/config"
	"github.com/jonesrussell/job-normalizer/internal/database"
	"github.com/jonesrussell/job-normalizer/internal/logger"
	"github.com/jonesrussell/job-normalizer/internal/vocabulary"
)

// SetupVocabulary loads the skill vocabulary. When the database source is
// configured it connects and loads enabled tokens; any failure falls back to
// the builtin set with a warning, never an error. The returned DB handle is
// nil unless a database connection was established.
func SetupVocabulary(cfg *config.Config, log logger.Logger) (*vocabulary.Vocabulary, *sqlx.DB) {
	if cfg.Vocabulary.Source != config.VocabularySourceDatabase {
		vocab := vocabulary.Builtin()
		log.Info("using builtin vocabulary", logger.Int("tokens", vocab.Len()))
		return vocab, nil
	}

	db, err := connectDatabase(cfg, log)
	if err != nil {
		log.Warn("database vocabulary unavailable, falling back to builtin",
			logger.Error(err))
		return vocabulary.Builtin(), nil
	}

	enabled := true
	rows, err := database.NewVocabularyRepository(db).List(context.Background(), &enabled)
	if err != nil {
		log.Warn("vocabulary load failed, falling back to builtin", logger.Error(err))
		_ = db.Close()
		return vocabulary.Builtin(), nil
	}
	if len(rows) == 0 {
		log.Warn("vocabulary table is empty, falling back to builtin")
		return vocabulary.Builtin(), db
	}

	skills := make([]vocabulary.Skill, len(rows))
	for i, row := range rows {
		skills[i] = vocabulary.Skill{Token: row.Token, Category: row.Category}
	}

	vocab := vocabulary.FromSkills(skills)
	log.Info("vocabulary loaded from database", logger.Int("tokens", vocab.Len()))
	return vocab, db
}

// connectDatabase opens the Postgres connection for the vocabulary store.
func connectDatabase(cfg *config.Config, log logger.Logger) (*sqlx.DB, error) {
	dbConfig := database.Config{
		Host:     cfg.Database.Host,
		Port:     strconv.Itoa(cfg.Database.Port),
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Database,
		SSLMode:  cfg.Database.SSLMode,
	}

	log.Info("connecting to PostgreSQL database",
		logger.String("host", dbConfig.Host),
		logger.String("port", dbConfig.Port),
		logger.String("database", dbConfig.DBName))

	return database.NewPostgresConnection(dbConfig)
}
