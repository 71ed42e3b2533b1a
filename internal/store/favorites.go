package store

const favoritesFile = "favorites.json"

// LoadFavorites reads the favorites set for a project directory. The file
// stores a key→bool object; only true entries survive the load.
func LoadFavorites(dir string) map[string]bool {
	raw := make(map[string]bool)
	loadJSON(dir, favoritesFile, &raw)

	favorites := make(map[string]bool, len(raw))
	for key, on := range raw {
		if on {
			favorites[key] = true
		}
	}
	return favorites
}

// SaveFavorites writes the favorites set back to disk.
func SaveFavorites(dir string, favorites map[string]bool) error {
	return saveJSON(dir, favoritesFile, favorites)
}

// ToggleFavorite flips the key in the set, dropping it entirely when
// unfavorited so the file never accumulates false entries.
func ToggleFavorite(favorites map[string]bool, key string) {
	if favorites[key] {
		delete(favorites, key)
	} else {
		favorites[key] = true
	}
}
