package blogservice

import "errors"

// ErrNoBlogs is returned by the aggregation helpers that have no meaningful
// answer for an empty list.
var ErrNoBlogs = errors.New("empty blog list")

type FavoriteBlogStat struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type AuthorBlogCount struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikeCount struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums the likes across all entries. An empty list sums to zero.
func TotalLikes(blogs []Blog) int {
	var total int
	for _, b := range blogs {
		total += b.Likes
	}

	return total
}

// FavoriteBlog returns the entry with the most likes. Ties go to the first
// maximal entry in input order.
func FavoriteBlog(blogs []Blog) (*FavoriteBlogStat, error) {
	if len(blogs) == 0 {
		return nil, ErrNoBlogs
	}

	favorite := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > favorite.Likes {
			favorite = b
		}
	}

	return &FavoriteBlogStat{
		Title:  favorite.Title,
		Author: favorite.Author,
		Likes:  favorite.Likes,
	}, nil
}

// MostBlogs returns the author with the largest number of entries. Ties go to
// the author that appears first in the input.
func MostBlogs(blogs []Blog) (*AuthorBlogCount, error) {
	if len(blogs) == 0 {
		return nil, ErrNoBlogs
	}

	counts := make(map[string]int)
	var authors []string

	for _, b := range blogs {
		if _, ok := counts[b.Author]; !ok {
			authors = append(authors, b.Author)
		}
		counts[b.Author]++
	}

	best := authors[0]
	for _, a := range authors[1:] {
		if counts[a] > counts[best] {
			best = a
		}
	}

	return &AuthorBlogCount{Author: best, Blogs: counts[best]}, nil
}

// MostLikes returns the author with the largest like total across their
// entries. Ties go to the author that appears first in the input.
func MostLikes(blogs []Blog) (*AuthorLikeCount, error) {
	if len(blogs) == 0 {
		return nil, ErrNoBlogs
	}

	likes := make(map[string]int)
	var authors []string

	for _, b := range blogs {
		if _, ok := likes[b.Author]; !ok {
			authors = append(authors, b.Author)
		}
		likes[b.Author] += b.Likes
	}

	best := authors[0]
	for _, a := range authors[1:] {
		if likes[a] > likes[best] {
			best = a
		}
	}

	return &AuthorLikeCount{Author: best, Likes: likes[best]}, nil
}
