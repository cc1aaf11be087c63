package conf

// DefaultNumberOfBuckets - Number of buckets in a bid hash map created without an explicit size.
// It is a prime to reduce systematic collisions for sequential or clustered numeric bid ids.
const DefaultNumberOfBuckets int64 = 179

// DefaultCSVPath - CSV file loaded by the command line tool when no path is given
const DefaultCSVPath string = "./res/eBid_Monthly_Sales_Dec_2016.csv"

// DefaultBidKey - Bid id searched for and removed by the command line tool when no key is given
const DefaultBidKey string = "98269"

// TitleColumn - CSV column holding the bid title, same for all known layouts
const TitleColumn int = 0

// BidIdColumn - CSV column holding the bid id, same for all known layouts
const BidIdColumn int = 1

// AmountColumn - CSV column holding the winning bid amount, same for all known layouts
const AmountColumn int = 4

// MonthlySalesColumns - Number of columns in the monthly sales export layout
const MonthlySalesColumns int = 9

// MonthlySalesFundColumn - CSV column holding the fund in the monthly sales export layout
const MonthlySalesFundColumn int = 8

// FullExportColumns - Number of columns in the full sales export layout
const FullExportColumns int = 20

// FullExportFundColumn - CSV column holding the fund in the full sales export layout
const FullExportFundColumn int = 19

// BucketsEnvVar - Environment variable overriding the number of buckets used by the command line tool
const BucketsEnvVar string = "BIDHASHMAP_BUCKETS"

// LogLevelEnvVar - Environment variable setting the log level of the command line tool (debug, info, warn, error)
const LogLevelEnvVar string = "BIDHASHMAP_LOG_LEVEL"
