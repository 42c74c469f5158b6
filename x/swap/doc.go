/*
Package swap implements a two party conditional escrow.

The offering party initializes an escrow for a pair of holder accounts, one
holding the offered asset and one holding the requested asset. Initialization
creates the escrow record and two empty custody accounts. All three addresses
are derived from the two holder addresses, so anyone can locate them, and
none of them has a private key.

Each party funds its custody account independently and can withdraw (defund)
it at any time before settlement. Once both custody accounts are funded,
anyone can crank the escrow. Crank moves both custody balances to their
final destinations in a single atomic step and marks the escrow as settled.

Outgoing custody transfers are authorized by recreating the escrow address
from its seeds and the bump supplied with the message.
*/
package swap
