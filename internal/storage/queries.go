package storage

const (
	createUserSQL = `INSERT INTO users (username, daily_goal) VALUES (?, ?)`

	getUserSQL = `SELECT id, username, daily_goal FROM users WHERE username = ?`

	updateUserGoalSQL = `UPDATE users SET daily_goal = ? WHERE username = ?`

	createIntakeSQL = `INSERT INTO water_intake (user_id, amount, date) VALUES (?, ?, ?)`

	listIntakeSQL = `SELECT id, user_id, amount, date
FROM water_intake
WHERE user_id = ?
ORDER BY date DESC, id DESC`
)
