package leaderboard

type Entry struct {
	Address     string  `json:"address" db:"address"`
	Score       int     `json:"score" db:"score"`
	Rank        int     `json:"rank"`
	Username    *string `json:"username,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
}

type Leaderboard struct {
	Entries      []*Entry `json:"entries"`
	UserPosition *Entry   `json:"user_position,omitempty"`
	TotalPlayers int      `json:"total_players"`
}
