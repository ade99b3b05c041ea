package queries

const (
	GetRecommendationByID = `
		SELECT id, patient_profile_id, COALESCE(created_by::text, ''), type, content, priority, active, created_at
		FROM health_recommendations
		WHERE id = $1
	`

	GetRecommendationsByPatient = `
		SELECT id, patient_profile_id, COALESCE(created_by::text, ''), type, content, priority, active, created_at
		FROM health_recommendations
		WHERE patient_profile_id = $1
			AND ($2 = '' OR type = $2)
			AND ($3 = false OR active = true)
		ORDER BY priority DESC, created_at DESC
	`

	InsertRecommendation = `
		INSERT INTO health_recommendations (id, patient_profile_id, created_by, type, content, priority, active, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)
	`

	DeactivateRecommendation = `
		UPDATE health_recommendations
		SET active = false
		WHERE id = $1
	`
)
