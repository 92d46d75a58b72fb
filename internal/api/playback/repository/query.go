package playbackRepository

const (
	queryCreateVoiceAction = `
		INSERT INTO voice_actions (
			id, user_id, command, locator, success, created_at
		) VALUES (
			:id, :user_id, :command, :locator, :success, :created_at
		)
	`

	queryGetVoiceActionsByUserID = `
		SELECT
			id, user_id, command, locator, success, created_at
		FROM voice_actions
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountVoiceActionsByUserID = `
		SELECT COUNT(*)
		FROM voice_actions
		WHERE user_id = :user_id
	`

	queryGetAllVoiceActionsByUserID = `
		SELECT
			id, user_id, command, locator, success, created_at
		FROM voice_actions
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryCreatePlaybackSession = `
		INSERT INTO playback_sessions (
			id, user_id, locator, backend, direct_media, created_at
		) VALUES (
			:id, :user_id, :locator, :backend, :direct_media, :created_at
		)
	`

	queryGetLatestPlaybackSessionByUserID = `
		SELECT
			id, user_id, locator, backend, direct_media, created_at
		FROM playback_sessions
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT 1
	`
)
