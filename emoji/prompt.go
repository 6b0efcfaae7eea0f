package emoji

import (
	"fmt"

	"github.com/poiesic/marquee/core"
)

// movieToEmojisPromptTemplate holds one worked example and one open slot.
// The completion starts right after the final cue.
const movieToEmojisPromptTemplate = `This is a game! Given the title and descripcion of two movies, represent each of them with 5 flat emojis.

----------
1) FROZEN:
Anna se une a Kristoff, un alpinista extremo, y a su reno, Sven, en un viaje épico donde se toparán con místicos Trolls, un divertido muñeco de nieve llamado Olaf, y temperaturas extremas, en una aventura por hallar a su hermana: la princesa Elsa.
----------
five flat emojis: ⛄🏰👸🏔️🥶

----------
2) %s:
%s
----------
five flat emojis:`

// BuildPrompt fills the few-shot prompt with the movie's title and description.
func BuildPrompt(movie core.Movie) string {
	return fmt.Sprintf(movieToEmojisPromptTemplate, movie.Title, movie.Description)
}
