package models

// All lists the admin API tables in creation order.
func All() []interface{} {
	return []interface{}{&CategoryBlog{}, &Post{}}
}

// AllReversed lists the tables in drop order.
func AllReversed() []interface{} {
	all := All()
	out := make([]interface{}, len(all))
	for i, m := range all {
		out[len(all)-1-i] = m
	}
	return out
}
