package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/store/drivers/dbutil"
)

const (
	savedRecipeColumns = `id, user_id, recipe_id, title, image, source, cuisine, meal_type,
    tags, ingredients, instructions, time_minutes, servings, difficulty,
    nutrition_summary, is_ai_generated, created_at`

	listSavedRecipesSQL = `SELECT ` + savedRecipeColumns + ` FROM saved_recipes
WHERE user_id = ?
ORDER BY created_at DESC, id DESC`

	upsertSavedRecipeSQL = `INSERT INTO saved_recipes (` + savedRecipeColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, recipe_id) DO UPDATE SET
    title             = excluded.title,
    image             = excluded.image,
    source            = excluded.source,
    cuisine           = excluded.cuisine,
    meal_type         = excluded.meal_type,
    tags              = excluded.tags,
    ingredients       = excluded.ingredients,
    instructions      = excluded.instructions,
    time_minutes      = excluded.time_minutes,
    servings          = excluded.servings,
    difficulty        = excluded.difficulty,
    nutrition_summary = excluded.nutrition_summary,
    is_ai_generated   = excluded.is_ai_generated,
    created_at        = excluded.created_at`

	deleteSavedRecipeSQL = `DELETE FROM saved_recipes WHERE user_id = ? AND recipe_id = ?`
	countSavedRecipesSQL = `SELECT COUNT(*) FROM saved_recipes`
)

type savedRecipesRepo struct {
	db *sql.DB
}

func scanSavedRecipe(row dbutil.RowScanner) (domain.SavedRecipe, error) {
	var (
		r                               domain.SavedRecipe
		tags, ingredients, instructions string
		timeMinutes, servings           sql.NullInt64
	)
	err := row.Scan(
		&r.ID, &r.UserID, &r.RecipeID, &r.Title, &r.Image, &r.Source, &r.Cuisine, &r.MealType,
		&tags, &ingredients, &instructions, &timeMinutes, &servings, &r.Difficulty,
		&r.NutritionSummary, &r.IsAIGenerated, &r.CreatedAt,
	)
	if err != nil {
		return domain.SavedRecipe{}, dbutil.MapNotFound(err)
	}

	if r.Tags, err = dbutil.DecodeList[string](tags); err != nil {
		return domain.SavedRecipe{}, fmt.Errorf("decode tags: %w", err)
	}
	if r.Ingredients, err = dbutil.DecodeList[domain.Ingredient](ingredients); err != nil {
		return domain.SavedRecipe{}, fmt.Errorf("decode ingredients: %w", err)
	}
	if r.Instructions, err = dbutil.DecodeList[string](instructions); err != nil {
		return domain.SavedRecipe{}, fmt.Errorf("decode instructions: %w", err)
	}
	r.TimeMinutes = dbutil.NullIntPtr(timeMinutes)
	r.Servings = dbutil.NullIntPtr(servings)
	r.CreatedAt = r.CreatedAt.UTC()
	return r, nil
}

func (r *savedRecipesRepo) ListSavedRecipes(ctx context.Context, userID string) ([]domain.SavedRecipe, error) {
	rows, err := r.db.QueryContext(ctx, listSavedRecipesSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SavedRecipe{}
	for rows.Next() {
		rec, err := scanSavedRecipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *savedRecipesRepo) UpsertSavedRecipe(ctx context.Context, rec domain.SavedRecipe) error {
	tags, err := dbutil.EncodeList(rec.Tags)
	if err != nil {
		return err
	}
	ingredients, err := dbutil.EncodeList(rec.Ingredients)
	if err != nil {
		return err
	}
	instructions, err := dbutil.EncodeList(rec.Instructions)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, upsertSavedRecipeSQL,
		rec.ID, rec.UserID, rec.RecipeID, rec.Title, rec.Image, rec.Source, rec.Cuisine, rec.MealType,
		tags, ingredients, instructions,
		dbutil.OptionalInt(rec.TimeMinutes), dbutil.OptionalInt(rec.Servings),
		rec.Difficulty, rec.NutritionSummary, rec.IsAIGenerated, rec.CreatedAt.UTC(),
	)
	return mapWriteError(err)
}

func (r *savedRecipesRepo) DeleteSavedRecipe(ctx context.Context, userID, recipeID string) error {
	res, err := r.db.ExecContext(ctx, deleteSavedRecipeSQL, userID, recipeID)
	if err != nil {
		return err
	}
	return dbutil.MapRowsAffected(res)
}

func (r *savedRecipesRepo) CountSavedRecipes(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, countSavedRecipesSQL).Scan(&n)
	return n, err
}
