package ok

var Answer = 42
