package visitor

// Visitor calls the callback for every (key, element) pair in a deterministic order.
// Iteration stops when the callback returns false or an error, the error is returned.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
