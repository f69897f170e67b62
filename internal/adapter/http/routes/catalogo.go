package routes

import (
	"madeireira_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProdutos   = "/produtos"
	PathOrcamentos = "/orcamentos"
	PathConfig     = "/config"
	PathAnalise    = "/analise"
)

func addCatalogoRoutes(
	rg *gin.RouterGroup,
	produtoHandler *handlers.ProdutoHandler,
	orcamentoHandler *handlers.OrcamentoHandler,
	configHandler *handlers.ConfigHandler,
	analiseHandler *handlers.AnaliseHandler,
) {
	produtos := rg.Group(PathProdutos)
	{
		produtos.GET("", produtoHandler.ListProdutos)
		produtos.POST("", produtoHandler.CreateProduto)
		produtos.PUT("/:id", produtoHandler.UpdateProduto)
		produtos.DELETE("/:id", produtoHandler.DeleteProduto)
	}

	orcamentos := rg.Group(PathOrcamentos)
	{
		orcamentos.GET("", orcamentoHandler.ListOrcamentos)
		orcamentos.POST("", orcamentoHandler.CreateOrcamento)
		orcamentos.DELETE("/:id", orcamentoHandler.DeleteOrcamento)
	}

	config := rg.Group(PathConfig)
	{
		config.GET("", configHandler.GetConfig)
		config.PUT("", configHandler.UpdateConfig)
	}

	rg.GET(PathAnalise, analiseHandler.GetAnalise)
}
