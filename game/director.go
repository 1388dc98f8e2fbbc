package game

type Director interface {
	/**
	 * Attach the director to a game; called again whenever a new game starts
	 */
	Init(*Game)

	/**
	 * Perform a single move
	 */
	Act()

	/**
	 * Stop acting
	 */
	End()
}
