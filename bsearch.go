package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"bsearch/search/boundary"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	_ "github.com/go-sql-driver/mysql"
)

func compareInt(a, b int) int {
	return a - b
}

type SortedValuesResolver struct {
	database  *sql.DB
	statement *sql.Stmt
}

func (svr *SortedValuesResolver) Init() {
	var err error
	svr.database, err = sql.Open("mysql", "gaux:dontenter@/bsearch")
	if err != nil {
		panic(err.Error())
	}

	err = svr.database.Ping()
	if err != nil {
		panic(err.Error())
	}

	svr.statement, err = svr.database.Prepare("SELECT Value FROM Sorted ORDER BY Value ASC")
	if err != nil {
		panic(err.Error())
	}

	return
}

func (svr *SortedValuesResolver) Close() {
	svr.database.Close()
	svr.statement.Close()
}

// loads the full sorted value set the service answers queries over
func (svr *SortedValuesResolver) Resolve() []int {
	rows, err := svr.statement.Query()
	if err != nil {
		panic(err.Error())
	}
	defer rows.Close()

	var values []int
	for rows.Next() {
		var value int
		err = rows.Scan(&value)
		if err != nil {
			panic(err.Error())
		}
		values = append(values, value)
	}

	return values
}

var Cache *redis.Client
var CTX context.Context
var sortedValues []int
var cachedRanges map[string]string
var cacheHitCount, cacheMissCount int

func main() {
	CTX = context.Background()
	Cache = redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	resolver := &SortedValuesResolver{}
	resolver.Init()
	sortedValues = resolver.Resolve()
	resolver.Close()

	if !boundary.IsSorted(sortedValues, compareInt) {
		panic("datasource returned values out of order")
	}

	cachedRanges = make(map[string]string)

	ginEngine := gin.Default()
	ginEngine.GET("/range", Range)
	ginEngine.GET("/lookup", Lookup)
	ginRunErr := ginEngine.Run("localhost" + ":" + "7890")

	if ginRunErr != nil {
		panic(ginRunErr)
	}
}

func Range(ginC *gin.Context) {
	urlParam := ginC.Request.URL.Query()
	low, _ := strconv.Atoi(urlParam["low"][0])
	high, _ := strconv.Atoi(urlParam["high"][0])

	result := make(map[string]interface{})
	query := "range:" + strconv.Itoa(low) + ":" + strconv.Itoa(high)

	if key, found := cachedRanges[query]; found {
		val, err := Cache.Get(CTX, key).Result()
		if err != nil {
			panic(err)
		}

		var values []int
		err = json.Unmarshal([]byte(val), &values)
		if err != nil {
			panic(err)
		}

		cacheHitCount++
		result["Cache Hits"] = cacheHitCount
		result["Cache Miss"] = cacheMissCount
		result["Result"] = values
		ginC.JSON(http.StatusOK, result)
		return
	}

	values := []int{}
	start, end, ok := boundary.SearchRange(sortedValues, low, high, compareInt)
	if ok {
		values = sortedValues[start : end+1]
	}

	encoded, err := json.Marshal(values)
	if err != nil {
		panic(err)
	}

	newUUID, _ := uuid.NewUUID()
	key := newUUID.String()
	err = Cache.Set(CTX, key, string(encoded), 0).Err()
	if err != nil {
		panic(err)
	}
	cachedRanges[query] = key

	cacheMissCount++
	result["Cache Hits"] = cacheHitCount
	result["Cache Miss"] = cacheMissCount
	result["Result"] = values
	ginC.JSON(http.StatusOK, result)
}

func Lookup(ginC *gin.Context) {
	urlParam := ginC.Request.URL.Query()
	value, _ := strconv.Atoi(urlParam["value"][0])

	result := make(map[string]interface{})
	index, ok := boundary.SearchEQ(sortedValues, value, compareInt)
	result["Found"] = ok
	result["Index"] = index
	ginC.JSON(http.StatusOK, result)
}
