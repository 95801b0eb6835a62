package models

// Token is the opaque credential returned by the login operation.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// UserShort is the minimal identity returned by the current-user endpoint.
type UserShort struct {
	UserID string `json:"userid"`
	Role   int    `json:"role"`
	Status int    `json:"status"`
}

// UserProfile is the full user profile returned by the user-by-id endpoint.
type UserProfile struct {
	UserShort
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	BirthDate string `json:"birth_date"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

// Subscriber is a follower or followee entry in social lists.
type Subscriber struct {
	UserID           string `json:"userid"`
	Role             int    `json:"role"`
	Status           int    `json:"status"`
	Username         string `json:"username"`
	SubscribersCount int    `json:"subscribers_count"`
	Avatar           string `json:"avatar"`
}

// UpdateProfileRequest carries a profile mutation. Nil pointer fields are left unchanged.
type UpdateProfileRequest struct {
	UserID    string  `json:"userid"`
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	BirthDate *string `json:"birth_date"`
	Email     *string `json:"email"`
	Avatar    *string `json:"avatar"`
	Status    int     `json:"status"`
}

// Film is the preview shape used in watchlists and search results.
type Film struct {
	FilmID          string   `json:"filmid"`
	Name            string   `json:"name"`
	AlternativeName string   `json:"alternative_name"`
	Season          *string  `json:"season"`
	PosterLink      string   `json:"poster_link"`
	ReleaseYear     int      `json:"release_year"`
	Countries       []string `json:"countries"`
	TimeMinutes     *int     `json:"time_minutes"`
	IsSeries        bool     `json:"is_series"`
	AlreadyAdded    *bool    `json:"already_added"`
}

// UserRating is the six-axis personal rating of a film.
type UserRating struct {
	Storyline   int `json:"storyline"`
	Music       int `json:"music"`
	Montage     int `json:"montage"`
	ActingGame  int `json:"acting_game"`
	Atmosphere  int `json:"atmosphere"`
	Originality int `json:"originality"`
}

// ExternalRatings aggregates third-party rating sources for a film.
type ExternalRatings struct {
	KP                 float64 `json:"kp"`
	IMDB               float64 `json:"imdb"`
	FilmCritics        float64 `json:"filmCritics"`
	RussianFilmCritics float64 `json:"russianFilmCritics"`
}

// Person is a cast or crew member on a film card.
type Person struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Photo        string `json:"photo"`
	EnProfession string `json:"en_profession"`
}

// Episode describes a single series episode.
type Episode struct {
	Number      int     `json:"number"`
	Name        string  `json:"name"`
	EnName      *string `json:"en_name"`
	AirDate     string  `json:"air_date"`
	Description string  `json:"description"`
	PreviewLink string  `json:"preview_link"`
}

// SeasonInfo summarizes one season of a series.
type SeasonInfo struct {
	Number        int `json:"number"`
	EpisodesCount int `json:"episodes_count"`
}

// FilmDetails is the full film card.
type FilmDetails struct {
	FilmID          string          `json:"filmid"`
	Season          *int            `json:"season"`
	IsSeries        bool            `json:"is_series"`
	SeasonsInfo     []SeasonInfo    `json:"seasons_info"`
	AlreadyAdded    *bool           `json:"already_added"`
	IsWatched       bool            `json:"is_watched"`
	UserRating      *UserRating     `json:"user_rating"`
	LastUpdated     string          `json:"last_updated"`
	AddedAt         string          `json:"added_at"`
	Name            string          `json:"name"`
	PosterLink      string          `json:"poster_link"`
	AlternativeName string          `json:"alternative_name"`
	ReleaseYear     int             `json:"release_year"`
	Genres          []string        `json:"genres"`
	Slogan          string          `json:"slogan"`
	Countries       []string        `json:"countries"`
	Director        string          `json:"director"`
	Description     string          `json:"description"`
	AgeRating       int             `json:"age_rating"`
	Persons         []Person        `json:"persons"`
	TimeMinutes     int             `json:"time_minutes"`
	Ratings         ExternalRatings `json:"ratings"`
	Trailers        []string        `json:"trailers"`
	Episodes        []Episode       `json:"episodes"`
}

// RangeNumber is an inclusive numeric filter range used in generation attributes.
type RangeNumber struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// GenAttrs is the attribute filter of a generated playlist.
// A nil GenAttrs on a playlist means the playlist is curated manually.
type GenAttrs struct {
	FilmID     string       `json:"filmid,omitempty"`
	Name       string       `json:"name,omitempty"`
	Person     string       `json:"person,omitempty"`
	IsSeries   *bool        `json:"is_series,omitempty"`
	Year       *RangeNumber `json:"year,omitempty"`
	KPRating   *RangeNumber `json:"kp_rating,omitempty"`
	Length     *RangeNumber `json:"length,omitempty"`
	AgeRating  *RangeNumber `json:"age_rating,omitempty"`
	Genres     []string     `json:"genres,omitempty"`
	Countries  []string     `json:"countries,omitempty"`
	IsWatched  *bool        `json:"is_watched,omitempty"`
	UserRating *UserRating  `json:"user_rating,omitempty"`
}

// Playlist is a user playlist, manual or generated.
type Playlist struct {
	UserID         string       `json:"userid"`
	PlaylistID     string       `json:"playlistid"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	IsPublic       bool         `json:"is_public"`
	AdditionsCount int          `json:"additions_count"`
	GenAttrs       *GenAttrs    `json:"gen_attrs"`
	Collaborators  []Subscriber `json:"collaborators"`
}

// PlaylistItem links a film into a playlist.
type PlaylistItem struct {
	PlaylistID string `json:"playlistid"`
	FilmID     string `json:"filmid"`
	CreatorID  string `json:"creatorid"`
}

// FilmPreview is the film summary shown inside playlist content.
type FilmPreview struct {
	FilmID          string       `json:"filmid"`
	Season          int          `json:"season"`
	IsSeries        bool         `json:"is_series"`
	SeasonsInfo     []SeasonInfo `json:"seasons_info"`
	AlreadyAdded    bool         `json:"already_added"`
	IsWatched       bool         `json:"is_watched"`
	UserRating      *UserRating  `json:"user_rating"`
	LastUpdated     string       `json:"last_updated"`
	AddedAt         string       `json:"added_at"`
	Playlists       []string     `json:"playlists"`
	Name            string       `json:"name"`
	PosterLink      string       `json:"poster_link"`
	ReleaseYear     int          `json:"release_year"`
	AlternativeName string       `json:"alternative_name"`
	Genres          []string     `json:"genres"`
	Countries       []string     `json:"countries"`
	Director        string       `json:"director"`
	TimeMinutes     int          `json:"time_minutes"`
	AgeRating       int          `json:"age_rating"`
}

// PlaylistExport bundles a playlist with its resolved content for export.
type PlaylistExport struct {
	Playlist Playlist              `json:"playlist"`
	Films    []PlaylistContentItem `json:"films"`
}

// PlaylistContentItem is one entry of a playlist content response.
type PlaylistContentItem struct {
	Item    PlaylistItem `json:"item"`
	Preview FilmPreview  `json:"preview"`
}
