package game

import "fmt"

// HelpText is the read-only rules text shown by the Help action.
var HelpText = fmt.Sprintf(`Thank you for playing Guess the Number.

You have to guess the number picked by the computer in a limited number
of attempts. Each time you guess, the game tells you whether the target
number is higher or lower than your guess.

1. Start a round with the Start control.
2. There are two difficulty settings:

   Easy : %d attempts
   Hard : %d attempts

The target is a whole number between 0 and %d.`, EasyAttempts, HardAttempts, TargetRange-1)
