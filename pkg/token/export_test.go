package token

var GenerateFrom = generate
