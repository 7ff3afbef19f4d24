package model

import "errors"

// Common errors used across the application
var (
	// Tile errors
	ErrUnknownLetter       = errors.New("letter has no point value")
	ErrInvalidLetter       = errors.New("invalid letter")
	ErrTooManyBlanks       = errors.New("too many blank tiles in rack")
	ErrRackTooLarge        = errors.New("rack holds too many tiles")
	ErrInvalidDistribution = errors.New("invalid letter distribution")
	ErrTileNotInRack       = errors.New("tile is not in rack")

	// Game errors
	ErrGameNotFound        = errors.New("game not found")
	ErrGameOver            = errors.New("game is over")
	ErrGameNotStarted      = errors.New("game has not been set up")
	ErrGameAlreadyStarted  = errors.New("game has already been set up")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrPoolTooSmall        = errors.New("tile pool is too small for the players")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrUnknownEncoding     = errors.New("unknown dictionary encoding")
)
