package ldpc

// Static incidence tables for the FT8 (174,91) LDPC code's Tanner graph.
//
// Both tables are 1-based: entry value v refers to variable/check index
// v-1. A zero entry in Nm marks an absent slot for one of the 59 checks
// that have degree 6 instead of 7 (83*7 - 174*3 = 59 such gaps). Mn has no
// sentinel: every one of the 174 variable nodes has degree exactly 3.
//
// Nm maps check index j in [0,83) to up to 7 variable indices.
var Nm = [83][7]int{
	{2, 74, 76, 81, 159, 164, 0},
	{13, 27, 34, 47, 86, 130, 149},
	{3, 55, 100, 134, 158, 172, 0},
	{8, 56, 74, 102, 150, 171, 0},
	{53, 79, 82, 85, 161, 171, 0},
	{37, 42, 51, 95, 149, 160, 164},
	{22, 27, 87, 111, 153, 155, 0},
	{6, 55, 61, 116, 129, 139, 0},
	{21, 39, 50, 60, 111, 174, 0},
	{36, 58, 65, 70, 90, 105, 135},
	{9, 11, 36, 45, 80, 142, 0},
	{15, 24, 67, 72, 113, 158, 0},
	{83, 86, 117, 137, 162, 168, 0},
	{20, 71, 115, 136, 142, 150, 0},
	{8, 41, 64, 114, 134, 155, 162},
	{9, 24, 52, 62, 67, 165, 0},
	{21, 92, 95, 111, 122, 145, 168},
	{28, 46, 84, 122, 123, 132, 0},
	{44, 75, 79, 80, 101, 118, 0},
	{3, 17, 63, 126, 133, 172, 0},
	{22, 29, 65, 105, 128, 130, 156},
	{18, 28, 87, 107, 139, 171, 0},
	{40, 81, 91, 101, 112, 153, 0},
	{1, 25, 84, 141, 148, 152, 154},
	{3, 35, 37, 51, 91, 138, 0},
	{8, 25, 66, 82, 121, 139, 158},
	{14, 31, 42, 45, 94, 110, 147},
	{16, 64, 79, 85, 89, 133, 140},
	{7, 26, 74, 80, 96, 159, 160},
	{23, 88, 121, 126, 132, 161, 0},
	{25, 41, 69, 86, 117, 170, 0},
	{2, 78, 93, 99, 161, 169, 0},
	{23, 26, 63, 90, 97, 147, 0},
	{32, 94, 95, 127, 141, 146, 0},
	{15, 20, 54, 92, 113, 131, 162},
	{2, 21, 39, 54, 127, 169, 0},
	{32, 68, 101, 106, 115, 141, 0},
	{20, 45, 59, 99, 119, 140, 0},
	{4, 70, 71, 89, 98, 131, 0},
	{53, 58, 102, 123, 156, 167, 0},
	{34, 96, 108, 110, 116, 160, 0},
	{71, 83, 100, 124, 138, 146, 0},
	{1, 33, 88, 147, 157, 166, 0},
	{6, 10, 109, 115, 116, 167, 0},
	{43, 76, 93, 106, 170, 173, 0},
	{13, 52, 59, 69, 72, 98, 155},
	{23, 121, 136, 144, 149, 157, 0},
	{12, 30, 44, 52, 96, 104, 0},
	{7, 30, 47, 90, 94, 140, 151},
	{26, 38, 41, 73, 85, 126, 0},
	{4, 40, 51, 99, 118, 163, 0},
	{6, 38, 88, 113, 124, 168, 0},
	{5, 48, 50, 60, 123, 159, 0},
	{73, 107, 128, 146, 154, 166, 0},
	{12, 81, 103, 120, 134, 169, 0},
	{59, 66, 89, 103, 104, 135, 0},
	{14, 31, 36, 77, 124, 129, 0},
	{5, 22, 29, 64, 142, 145, 0},
	{7, 16, 32, 128, 165, 172, 174},
	{4, 49, 53, 57, 119, 125, 0},
	{17, 33, 73, 75, 78, 156, 0},
	{9, 15, 28, 107, 120, 133, 0},
	{17, 18, 56, 62, 68, 151, 167},
	{50, 83, 97, 103, 112, 125, 0},
	{44, 47, 54, 82, 132, 152, 0},
	{10, 70, 114, 127, 154, 173, 0},
	{5, 12, 37, 46, 130, 137, 143},
	{30, 43, 56, 98, 153, 157, 0},
	{31, 48, 68, 109, 144, 163, 0},
	{10, 19, 33, 77, 97, 106, 173},
	{1, 11, 29, 38, 105, 108, 148},
	{108, 117, 138, 143, 148, 174, 0},
	{27, 57, 78, 114, 152, 170, 0},
	{14, 35, 48, 87, 102, 110, 145},
	{18, 35, 49, 60, 125, 164, 0},
	{55, 62, 76, 92, 135, 136, 0},
	{40, 75, 93, 100, 109, 129, 165},
	{24, 43, 46, 67, 143, 144, 0},
	{11, 13, 57, 58, 61, 137, 166},
	{49, 63, 69, 84, 131, 151, 163},
	{19, 39, 66, 72, 91, 122, 0},
	{19, 61, 65, 104, 119, 120, 150},
	{16, 34, 42, 77, 112, 118, 0},
}


// Mn maps variable index i in [0,174) to exactly 3 check indices.
var Mn = [174][3]int{
	{24, 43, 71},
	{1, 32, 36},
	{3, 20, 25},
	{39, 51, 60},
	{53, 58, 67},
	{8, 44, 52},
	{29, 49, 59},
	{4, 15, 26},
	{11, 16, 62},
	{44, 66, 70},
	{11, 71, 79},
	{48, 55, 67},
	{2, 46, 79},
	{27, 57, 74},
	{12, 35, 62},
	{28, 59, 83},
	{20, 61, 63},
	{22, 63, 75},
	{70, 81, 82},
	{14, 35, 38},
	{9, 17, 36},
	{7, 21, 58},
	{30, 33, 47},
	{12, 16, 78},
	{24, 26, 31},
	{29, 33, 50},
	{2, 7, 73},
	{18, 22, 62},
	{21, 58, 71},
	{48, 49, 68},
	{27, 57, 69},
	{34, 37, 59},
	{43, 61, 70},
	{2, 41, 83},
	{25, 74, 75},
	{10, 11, 57},
	{6, 25, 67},
	{50, 52, 71},
	{9, 36, 81},
	{23, 51, 77},
	{15, 31, 50},
	{6, 27, 83},
	{45, 68, 78},
	{19, 48, 65},
	{11, 27, 38},
	{18, 67, 78},
	{2, 49, 65},
	{53, 69, 74},
	{60, 75, 80},
	{9, 53, 64},
	{6, 25, 51},
	{16, 46, 48},
	{5, 40, 60},
	{35, 36, 65},
	{3, 8, 76},
	{4, 63, 68},
	{60, 73, 79},
	{10, 40, 79},
	{38, 46, 56},
	{9, 53, 75},
	{8, 79, 82},
	{16, 63, 76},
	{20, 33, 80},
	{15, 28, 58},
	{10, 21, 82},
	{26, 56, 81},
	{12, 16, 78},
	{37, 63, 69},
	{31, 46, 80},
	{10, 39, 66},
	{14, 39, 42},
	{12, 46, 81},
	{50, 54, 61},
	{1, 4, 29},
	{19, 61, 77},
	{1, 45, 76},
	{57, 70, 83},
	{32, 61, 73},
	{5, 19, 28},
	{11, 19, 29},
	{1, 23, 55},
	{5, 26, 65},
	{13, 42, 64},
	{18, 24, 80},
	{5, 28, 50},
	{2, 13, 31},
	{7, 22, 74},
	{30, 43, 52},
	{28, 39, 56},
	{10, 33, 49},
	{23, 25, 81},
	{17, 35, 76},
	{32, 45, 77},
	{27, 34, 49},
	{6, 17, 34},
	{29, 41, 48},
	{33, 64, 70},
	{39, 46, 68},
	{32, 38, 51},
	{3, 42, 77},
	{19, 23, 37},
	{4, 40, 74},
	{55, 56, 64},
	{48, 56, 82},
	{10, 21, 71},
	{37, 45, 70},
	{22, 54, 62},
	{41, 71, 72},
	{44, 69, 77},
	{27, 41, 74},
	{7, 9, 17},
	{23, 64, 83},
	{12, 35, 52},
	{15, 66, 73},
	{14, 37, 44},
	{8, 41, 44},
	{13, 31, 72},
	{19, 51, 83},
	{38, 60, 82},
	{55, 62, 82},
	{26, 30, 47},
	{17, 18, 81},
	{18, 40, 53},
	{42, 52, 57},
	{60, 64, 75},
	{20, 30, 50},
	{34, 36, 66},
	{21, 54, 59},
	{8, 57, 77},
	{2, 21, 67},
	{35, 39, 80},
	{18, 30, 65},
	{20, 28, 62},
	{3, 15, 55},
	{10, 56, 76},
	{14, 47, 76},
	{13, 67, 79},
	{25, 42, 72},
	{8, 22, 26},
	{28, 38, 49},
	{24, 34, 37},
	{11, 14, 58},
	{67, 72, 78},
	{47, 69, 78},
	{17, 58, 74},
	{34, 42, 54},
	{27, 33, 43},
	{24, 71, 72},
	{2, 6, 47},
	{4, 14, 82},
	{49, 63, 80},
	{24, 65, 73},
	{7, 23, 68},
	{24, 54, 66},
	{7, 15, 46},
	{21, 40, 61},
	{43, 47, 68},
	{3, 12, 26},
	{1, 29, 53},
	{6, 29, 41},
	{5, 30, 32},
	{13, 15, 35},
	{51, 69, 80},
	{1, 6, 75},
	{16, 59, 77},
	{43, 54, 79},
	{40, 44, 63},
	{13, 17, 52},
	{32, 36, 55},
	{31, 45, 73},
	{4, 5, 22},
	{3, 20, 59},
	{45, 66, 70},
	{9, 59, 72},
}

// numVars, numChecks and numPayload give the dimensions the rest of the
// package relies on, so the magic numbers in check.go/decode_*.go read as
// named constants instead of repeated literals.
const (
	numVars    = 174 // FT8 codeword length (n)
	numChecks  = 83  // FT8 parity equations (m)
	numPayload = 91  // FT8 systematic prefix length (k), payload+CRC
)
